// Package main mints a service API key together with the bcrypt hash the
// server reads from API_KEY_HASH. The key is printed once and not stored.
package main

import (
	"fmt"

	"veriban/internal/utils"

	"github.com/sirupsen/logrus"
)

func main() {
	key, err := utils.GenerateAPIKey()
	if err != nil {
		logrus.WithError(err).Fatal("failed to generate api key")
	}

	hash, err := utils.HashAPIKey(key)
	if err != nil {
		logrus.WithError(err).Fatal("failed to hash api key")
	}

	fmt.Println("API key (give to the client):")
	fmt.Println("  " + key)
	fmt.Println("API_KEY_HASH (set on the server):")
	fmt.Println("  " + hash)
}
