package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database URL (postgres:// DSN or SQLite file path)
//	-c/-config json file path with configs
//	-redirect-uri OAuth callback URL registered with the providers
//	-session-ttl session lifetime (e.g., "24h")
//	-provider-timeout outbound provider call timeout (e.g., "10s")
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-documents-manifest path to the documents JSON manifest
//	-documents-dir path to the document content directory
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseURL string
	var jsonConfigPath string
	var redirectURI string
	var sessionTTL time.Duration
	var providerTimeout time.Duration
	var requestTimeout time.Duration
	var documentsManifest string
	var documentsDir string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseURL, "d", "", "Database URL")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&redirectURI, "redirect-uri", "", "OAuth redirect URI")
	flag.DurationVar(&sessionTTL, "session-ttl", 0, "Session TTL (e.g., 24h)")
	flag.DurationVar(&providerTimeout, "provider-timeout", 0, "Provider call timeout (e.g., 10s)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&documentsManifest, "documents-manifest", "", "Documents JSON manifest path")
	flag.StringVar(&documentsDir, "documents-dir", "", "Document content directory")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			SessionTTL:      sessionTTL,
			ProviderTimeout: providerTimeout,
		},
		OAuth: OAuth{
			RedirectURI: redirectURI,
		},
		Storage: Storage{
			DatabaseURL: databaseURL,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Catalog: Catalog{
			ManifestPath: documentsManifest,
			ContentDir:   documentsDir,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so the
// merge step can fall through to other sources.
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

	if host != "" && host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
