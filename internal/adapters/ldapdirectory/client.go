package ldapdirectory

import (
	"net"

	"github.com/go-ldap/ldap/v3"
)

type ldapConn interface {
	connect() error
	disconnect() error
	search(*ldap.SearchRequest) (*ldap.SearchResult, error)
}

func newLdapConn(url string, cfg Config) ldapConn {
	return &ldapClient{Config: cfg, url: url}
}

type ldapClient struct {
	Config

	url  string
	conn *ldap.Conn
}

func (c *ldapClient) search(req *ldap.SearchRequest) (*ldap.SearchResult, error) {
	return c.conn.Search(req)
}

func (c *ldapClient) connect() error {
	d := &net.Dialer{
		Timeout: c.Timeout,
	}

	conn, err := ldap.DialURL(c.url, ldap.DialWithDialer(d))
	if err != nil {
		return err
	}

	// Without a bind DN the session stays anonymous, which is how Oracle clients read net service entries.
	if c.BindDN != "" {
		if err := conn.Bind(c.BindDN, c.BindPassword); err != nil {
			_ = conn.Close()
			return err
		}
	}

	c.conn = conn

	return nil
}

func (c *ldapClient) disconnect() error {
	defer func() { c.conn = nil }()
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
