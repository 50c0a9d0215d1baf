package ldapdirectory

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/go-ldap/ldap/v3"

	"github.com/AntonioJCosta/tnssync/internal/core/domain/netservice"
	"github.com/AntonioJCosta/tnssync/internal/core/ports"
)

const (
	netServiceFilter  = "(objectClass=orclNetService)"
	attrCommonName    = "cn"
	attrNetDescString = "orclNetDescString"

	defaultLdapPort = "389"
)

// Config holds the directory connection parameters.
type Config struct {
	// Endpoints are tried in order: "host", "host:port", "host:port:sslport" or an ldap:// / ldaps:// URL.
	Endpoints []string
	// AdminContext is the search base, usually DEFAULT_ADMIN_CONTEXT from ldap.ora.
	AdminContext string
	Timeout      time.Duration
	BindDN       string
	BindPassword string
}

// ResolverFactory creates one Resolver per run.
type ResolverFactory struct {
	cfg     Config
	newConn func(url string, cfg Config) ldapConn
}

// NewResolverFactory creates a new ResolverFactory.
func NewResolverFactory(cfg Config) (*ResolverFactory, error) {
	if strings.TrimSpace(cfg.AdminContext) == "" {
		return nil, fmt.Errorf("directory admin context cannot be empty")
	}
	return &ResolverFactory{cfg: cfg, newConn: newLdapConn}, nil
}

// NewResolver implements the ports.DirectoryResolverFactory interface.
func (f *ResolverFactory) NewResolver() (ports.DirectoryResolver, error) {
	urls := make([]string, 0, len(f.cfg.Endpoints))
	for _, endpoint := range f.cfg.Endpoints {
		url, err := endpointURL(endpoint)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return &Resolver{Config: f.cfg, urls: urls, newConn: f.newConn}, nil
}

/*
Resolver looks up orclNetService entries. It connects on the first lookup
that needs the directory, trying each endpoint in order, and reuses that
connection until Close.
*/
type Resolver struct {
	Config

	urls    []string
	newConn func(url string, cfg Config) ldapConn

	conn         ldapConn
	connectedURL string
}

// Resolve implements the ports.DirectoryResolver interface.
func (r *Resolver) Resolve(serviceNames []string) (map[string]netservice.ServiceRecord, error) {
	records := make(map[string]netservice.ServiceRecord)
	if len(serviceNames) == 0 {
		slog.Debug("no service names requested, skipping directory search")
		return records, nil
	}

	wanted := make(map[string]struct{}, len(serviceNames))
	for _, name := range serviceNames {
		wanted[netservice.NormalizeName(name)] = struct{}{}
	}

	conn, err := r.connection()
	if err != nil {
		return nil, err
	}

	slog.Debug("searching net services", "endpoint", r.connectedURL, "base", r.AdminContext, "filter", netServiceFilter)
	resp, err := conn.search(newNetServiceSearchRequest(r.AdminContext))
	if err != nil {
		return nil, fmt.Errorf("%w (endpoint %s, base %q): %w", netservice.ErrDirectorySearch, r.connectedURL, r.AdminContext, err)
	}

	for _, entry := range resp.Entries {
		for _, cn := range entry.GetEqualFoldAttributeValues(attrCommonName) {
			name := netservice.NormalizeName(cn)
			if _, ok := wanted[name]; !ok {
				continue
			}

			desc := entry.GetEqualFoldAttributeValue(attrNetDescString)
			if strings.TrimSpace(desc) == "" {
				return nil, fmt.Errorf("%w: entry '%s' has no %s attribute", netservice.ErrDirectorySearch, entry.DN, attrNetDescString)
			}

			record := netservice.NewServiceRecord(name, desc)
			records[name] = record
			slog.Debug("found net service", "service", name, "dn", entry.DN)
		}
	}

	slog.Debug("directory search finished", "requested", len(wanted), "found", len(records), "entries_scanned", len(resp.Entries))
	return records, nil
}

// Close implements the ports.DirectoryResolver interface.
func (r *Resolver) Close() error {
	if r.conn == nil {
		return nil
	}
	defer func() {
		r.conn = nil
		r.connectedURL = ""
	}()
	slog.Debug("disconnecting from directory server", "endpoint", r.connectedURL)
	return r.conn.disconnect()
}

// connection returns the cached connection or dials the endpoints in order until one accepts.
func (r *Resolver) connection() (ldapConn, error) {
	if r.conn != nil {
		return r.conn, nil
	}
	if len(r.urls) == 0 {
		return nil, fmt.Errorf("%w: no directory servers configured", netservice.ErrDirectoryUnreachable)
	}

	var errs []error
	for _, url := range r.urls {
		conn := r.newConn(url, r.Config)

		slog.Debug("connecting to directory server", "endpoint", url)
		if err := conn.connect(); err != nil {
			slog.Warn("connection to directory server failed", "endpoint", url, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", url, err))
			continue
		}

		slog.Debug("connected to directory server", "endpoint", url)
		r.conn = conn
		r.connectedURL = url
		return conn, nil
	}

	return nil, fmt.Errorf("%w [%s]: %w", netservice.ErrDirectoryUnreachable, strings.Join(r.urls, ", "), errors.Join(errs...))
}

func newNetServiceSearchRequest(baseDN string) *ldap.SearchRequest {
	return ldap.NewSearchRequest(
		baseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		0,
		0,
		false,
		netServiceFilter,
		[]string{attrCommonName, attrNetDescString},
		nil,
	)
}

/*
endpointURL turns a directory server entry into an LDAP URL.

Oracle lists servers as host:port:sslport; the plain port is used and
389 is assumed when none is given. Entries that already are URLs are
returned unchanged.
*/
func endpointURL(endpoint string) (string, error) {
	endpoint = strings.TrimSpace(endpoint)
	if strings.Contains(endpoint, "://") {
		return endpoint, nil
	}

	parts := strings.Split(endpoint, ":")
	if len(parts) > 3 || parts[0] == "" {
		return "", fmt.Errorf("invalid directory server %q", endpoint)
	}

	port := defaultLdapPort
	if len(parts) > 1 && parts[1] != "" {
		if _, err := strconv.Atoi(parts[1]); err != nil {
			return "", fmt.Errorf("invalid port in directory server %q", endpoint)
		}
		port = parts[1]
	}

	return "ldap://" + net.JoinHostPort(parts[0], port), nil
}
