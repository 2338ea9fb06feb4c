package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const orderNumberAlphabet = "0123456789ABCDEFGHJKLMNPQRSTUVWXYZ"

// GenerateOrderNumber returns a 10 character human friendly order reference.
func GenerateOrderNumber() (string, error) {
	return gonanoid.Generate(orderNumberAlphabet, 10)
}
