package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"
)

// promptToken reads the authentication token from the terminal without
// echoing it.
func promptToken() (string, error) {
	// Get the initial state of the terminal so it can be restored in the
	// event of an interrupt.
	initialTermState, err := term.GetState(int(syscall.Stdin))
	if err != nil {
		return "", err
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		<-c
		_ = term.Restore(int(syscall.Stdin), initialTermState)
		os.Exit(1)
	}()

	fmt.Print("Token: ")
	token, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}

	signal.Stop(c)
	return string(token), nil
}
