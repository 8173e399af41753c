package main

import (
	"fmt"
	"os"
	"time"

	"github.com/corvusdb/corvus-client-go/corvusclient/httpclient"
	"github.com/corvusdb/corvus-client-go/version"
)

func main() {
	cfg, err := parseConfig()
	if err != nil {
		printErrorAndExit(fmt.Sprintf("error parsing command-line arguments: %s", err))
	}
	if cfg.ShowVersion {
		fmt.Printf("corvusql version %s\n", version.Version())
		return
	}

	err = initLog(cfg)
	if err != nil {
		printErrorAndExit(fmt.Sprintf("error setting up logging: %s", err))
	}

	authToken := cfg.AuthToken
	if cfg.PromptToken {
		authToken, err = promptToken()
		if err != nil {
			printErrorAndExit(fmt.Sprintf("error reading the token: %s", err))
		}
	}

	client, err := httpclient.ConnectWithOptions(cfg.Endpoint, &httpclient.Options{
		AuthToken:      authToken,
		RequestTimeout: time.Duration(cfg.Timeout) * time.Second,
		Proxy:          cfg.Proxy,
		ProxyUser:      cfg.ProxyUser,
		ProxyPass:      cfg.ProxyPass,
	})
	if err != nil {
		printErrorAndExit(fmt.Sprintf("error creating the client: %s", err))
	}
	defer client.Close()

	shell := newShell(client, time.Duration(cfg.Timeout)*time.Second)
	if cfg.Execute != "" {
		err = shell.executeOnce(cfg.Execute)
	} else {
		err = shell.run(os.Stdin)
	}
	if err != nil {
		printErrorAndExit(err.Error())
	}
}

func printErrorAndExit(message string) {
	fmt.Fprintf(os.Stderr, "%s\n", message)
	os.Exit(1)
}
