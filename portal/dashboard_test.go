package portal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCheckoutReplacesPrevious(t *testing.T) {
	d := NewDashboardState()

	_, err := d.OpenCheckout("c1")
	require.NoError(t, err)
	assert.Equal(t, "c1", d.Checkout)

	_, err = d.OpenCheckout("c3")
	require.NoError(t, err)
	assert.Equal(t, "c3", d.Checkout)
}

func TestOpenCheckoutUnknownCourse(t *testing.T) {
	d := NewDashboardState()

	_, err := d.OpenCheckout("missing")
	assert.ErrorIs(t, err, ErrCourseNotFound)
	assert.Empty(t, d.Checkout)
}

func TestConfirmPurchaseIsTerminal(t *testing.T) {
	d := NewDashboardState()

	_, err := d.OpenCheckout("c1")
	require.NoError(t, err)

	course, err := d.ConfirmPurchase("c1")
	require.NoError(t, err)
	assert.True(t, course.IsPurchased)
	assert.Empty(t, d.Checkout, "checkout context closes on purchase")

	course, err = d.ConfirmPurchase("c1")
	require.NoError(t, err)
	assert.True(t, course.IsPurchased, "repeat purchase stays a no-op success")
}

func TestConfirmPurchaseUnknownCourse(t *testing.T) {
	d := NewDashboardState()

	_, err := d.ConfirmPurchase("missing")
	assert.ErrorIs(t, err, ErrCourseNotFound)
}
