// Command client is a small terminal client for the auth service,
// exercising the same session flow the site front end uses: login, signup,
// logout, and a guarded whoami.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/lyzehq/auth-service/internal/client/guard"
	"github.com/lyzehq/auth-service/internal/client/localstore"
	"github.com/lyzehq/auth-service/internal/client/session"
	"github.com/lyzehq/auth-service/pkg/logging"
)

func main() {
	server := flag.String("server", "http://localhost:8080", "auth service base URL")
	dbPath := flag.String("db", defaultDBPath(), "path to the local session cache")
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	logger, err := logging.New("development")
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	if err := os.MkdirAll(filepath.Dir(*dbPath), 0o700); err != nil {
		log.Fatalf("failed to create cache directory: %v", err)
	}
	cache, err := localstore.Open(*dbPath)
	if err != nil {
		log.Fatalf("failed to open session cache: %v", err)
	}
	defer cache.Close()

	mgr, err := session.NewManager(*server, cache, logger.Sugar())
	if err != nil {
		log.Fatalf("failed to build session manager: %v", err)
	}

	ctx := context.Background()
	mgr.Hydrate(ctx)

	switch flag.Arg(0) {
	case "login":
		requireArgs(2, "login <email> <password>")
		out := mgr.Login(ctx, flag.Arg(1), flag.Arg(2))
		report(out.Success, out.Message)
	case "signup":
		requireArgs(3, "signup <name> <email> <password>")
		out := mgr.Signup(ctx, flag.Arg(1), flag.Arg(2), flag.Arg(3))
		report(out.Success, out.Message)
	case "logout":
		target := mgr.Logout(ctx)
		fmt.Printf("logged out, continue at %s\n", target)
	case "whoami":
		if target, redirect := guard.Check(mgr); redirect {
			fmt.Printf("not signed in, continue at %s\n", target)
			os.Exit(1)
		}
		user, _ := mgr.CurrentUser()
		fmt.Printf("%s <%s> plan=%s status=%s\n", user.Name, user.Email, user.Plan, user.Status)
	default:
		usage()
		os.Exit(2)
	}
}

func requireArgs(n int, form string) {
	if flag.NArg() < n+1 {
		fmt.Fprintf(os.Stderr, "usage: client %s\n", form)
		os.Exit(2)
	}
}

func report(success bool, message string) {
	fmt.Println(message)
	if !success {
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: client [-server URL] [-db PATH] <login|signup|logout|whoami> [args]")
}

func defaultDBPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "lyze-session.db"
	}
	return filepath.Join(dir, "lyze", "session.db")
}
