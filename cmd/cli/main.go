// Command cli is a small admin tool for NewsHub. It registers users directly
// against the database, which is the only way to create admin accounts.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/avoronov/newshub/internal/credentials"
	"github.com/avoronov/newshub/internal/storage"
)

func main() {

	var (
		dsn   = flag.String("d", "sqlite:newshub.db", "database DSN")
		email = flag.String("email", "", "email of the account to create")
		name  = flag.String("name", "", "display name of the account")
		admin = flag.Bool("admin", true, "grant the admin role")
	)
	flag.Parse()

	if *email == "" || *name == "" {
		flag.Usage()
		os.Exit(2)
	}

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		log.Fatalf("password read error: %v", err)
	}
	if len(password) == 0 {
		log.Fatal("password must not be empty")
	}

	ctx := context.Background()

	m, err := storage.NewRepositoryManager(ctx, *dsn)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	defer m.Close()

	role := credentials.RoleUser
	if *admin {
		role = credentials.RoleAdmin
	}

	svc := credentials.NewService(m.Credentials())
	cred, err := svc.Register(ctx, *email, *name, string(password), role)
	if err != nil {
		log.Fatalf("register error: %v", err)
	}

	fmt.Printf("created %s account %s (%s)\n", cred.Role, cred.Email, cred.ID)
}
