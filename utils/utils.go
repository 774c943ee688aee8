package utils

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"time"

	"lumina/models"

	"github.com/google/uuid"
)

// NewID returns a collision-free identity for portal records.
func NewID() string {
	return uuid.NewString()
}

// GenerateMeetingID generates a pseudo-random 9-digit meeting room id
func GenerateMeetingID() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return strconv.Itoa(rng.Intn(900000000) + 100000000)
}

const passcodeCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

// GeneratePasscode generates an 8-character alphanumeric meeting passcode
func GeneratePasscode() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	pwd := make([]byte, 8)
	for i := range pwd {
		pwd[i] = passcodeCharset[rng.Intn(len(passcodeCharset))]
	}
	return string(pwd)
}

// BuildMeetingLink templates the credentials into a Zoom join URL
func BuildMeetingLink(meetingID, passcode string) string {
	return fmt.Sprintf("https://zoom.us/j/%s?pwd=%s", meetingID, passcode)
}

// AvatarURL derives a deterministic avatar image from the given seed
func AvatarURL(seed string) string {
	return fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", seed)
}

var nonDigits = regexp.MustCompile(`\D`)

// GenerateStudentID builds the institutional id: role prefix, enrollment year
// and the last five digits of the phone number, zero padded.
func GenerateStudentID(phone, role string) string {
	digits := nonDigits.ReplaceAllString(phone, "")
	if len(digits) > 5 {
		digits = digits[len(digits)-5:]
	}
	for len(digits) < 5 {
		digits = "0" + digits
	}

	prefix := "LUM"
	switch role {
	case models.RoleTeacher:
		prefix = "TEA"
	case models.RoleAdmin:
		prefix = "ADM"
	}

	return fmt.Sprintf("%s/%d/%s", prefix, time.Now().Year(), digits)
}
