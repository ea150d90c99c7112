package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

func IsLuna(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}

// NewLunaNumber returns a random numeric string of the given length whose
// last digit is a Luhn check digit.
func NewLunaNumber(length int) string {
	return goluhn.Generate(length)
}
