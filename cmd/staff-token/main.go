// staff-token mints a staff session in redis and prints the token. Staff
// sessions can view every borrower and are the only sessions allowed to
// upload workbooks.
//
// Usage (from backend directory):
//   REDIS_ADDRESS=localhost:6379 go run ./cmd/staff-token [-ttl 24h]
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"bitbucket.org/coradatalabs/cora_backend/config"
	"bitbucket.org/coradatalabs/cora_backend/middlewares"
)

func main() {
	ttl := flag.Duration("ttl", 24*time.Hour, "session lifetime")
	flag.Parse()

	config.ConnectRedisWithRetry()

	token := uuid.NewString()
	session := middlewares.Session{Staff: true}
	if err := config.SetRedisObject(middlewares.SessionKey(token), session, *ttl); err != nil {
		fmt.Fprintf(os.Stderr, "failed to store session: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("token=%s (expires in %s)\n", token, *ttl)
}
