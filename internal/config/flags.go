package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the process command line.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-bcrypt-cost bcrypt work factor
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-redis-address redis address in format [host]:[port]
//	-redis-password redis password
//	-redis-db redis database number
//	-cache-ttl user status cache TTL
//	-log-level zerolog level
func ParseFlags(name string, args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	var serverAddress NetAddress
	var cfg StructuredConfig

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.IntVar(&cfg.App.BcryptCost, "bcrypt-cost", 0, "Bcrypt work factor")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.Storage.Cache.Address, "redis-address", "", "Redis address host:port")
	fs.StringVar(&cfg.Storage.Cache.Password, "redis-password", "", "Redis password")
	fs.IntVar(&cfg.Storage.Cache.DB, "redis-db", 0, "Redis database number")
	fs.DurationVar(&cfg.Storage.Cache.TTL, "cache-ttl", 0, "User status cache TTL")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()

	return &cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
