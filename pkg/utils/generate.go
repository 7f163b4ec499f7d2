package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// GenerateBookingReference creates a human-readable booking reference.
// Format: TRV-YYYYMMDD-HHMMSS-RANDOM
func GenerateBookingReference() string {
	now := time.Now()
	randomPart := fmt.Sprintf("%04d", rand.Intn(10000))
	return fmt.Sprintf("TRV-%s-%s-%s", now.Format("20060102"), now.Format("150405"), randomPart)
}
