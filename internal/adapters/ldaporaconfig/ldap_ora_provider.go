package ldaporaconfig

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/ini.v1"
)

// LdapOraFilename is the name of the directory naming configuration inside the TNS_ADMIN directory.
const LdapOraFilename = "ldap.ora"

const (
	keyDefaultAdminContext = "DEFAULT_ADMIN_CONTEXT"
	keyDirectoryServers    = "DIRECTORY_SERVERS"
)

// Settings holds the directory lookup parameters read from ldap.ora.
type Settings struct {
	AdminContext     string
	DirectoryServers []string
}

// LdapOraProvider reads directory settings from an ldap.ora file.
type LdapOraProvider struct {
	filePath string
}

// NewLdapOraProvider creates a new LdapOraProvider.
// filePath is the path to the ldap.ora file.
func NewLdapOraProvider(filePath string) (*LdapOraProvider, error) {
	if filePath == "" {
		return nil, fmt.Errorf("ldap.ora file path cannot be empty")
	}
	return &LdapOraProvider{filePath: filePath}, nil
}

/*
Load reads and parses the ldap.ora file.

DEFAULT_ADMIN_CONTEXT is required. DIRECTORY_SERVERS may be missing, in
which case no server can be contacted. Parameter names are matched
case-insensitively, values may continue on indented lines, and a '#'
outside quotes starts a comment.
*/
func (p *LdapOraProvider) Load() (Settings, error) {
	data, err := os.ReadFile(p.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return Settings{}, fmt.Errorf("%s file is missing (%s)", LdapOraFilename, p.filePath)
		}
		return Settings{}, fmt.Errorf("failed to read %s file %s: %w", LdapOraFilename, p.filePath, err)
	}

	cfg, err := ini.LoadSources(ini.LoadOptions{
		Insensitive:                true,
		AllowPythonMultilineValues: true,
		IgnoreInlineComment:        true,
		KeyValueDelimiters:         "=",
	}, data)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to parse %s file %s: %w", LdapOraFilename, p.filePath, err)
	}

	sec := cfg.Section("")

	adminContext := cleanValue(stripInlineComments(sec.Key(keyDefaultAdminContext).String()))
	if adminContext == "" {
		return Settings{}, fmt.Errorf("missing parameter %s in %s", keyDefaultAdminContext, p.filePath)
	}

	return Settings{
		AdminContext:     adminContext,
		DirectoryServers: parseDirectoryServers(stripInlineComments(sec.Key(keyDirectoryServers).String())),
	}, nil
}

/*
stripInlineComments cuts every line of value at the first '#' outside double
quotes. ini only knows whole-line comments here, because its own inline
comment handling would also cut at ';'.
*/
func stripInlineComments(value string) string {
	lines := strings.Split(value, "\n")
	for i, line := range lines {
		inQuotes := false
		for j, r := range line {
			if r == '"' {
				inQuotes = !inQuotes
			} else if r == '#' && !inQuotes {
				line = line[:j]
				break
			}
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// cleanValue removes the parentheses and quotes Oracle allows around parameter values.
func cleanValue(value string) string {
	value = strings.TrimSpace(value)
	value = strings.Trim(value, "()")
	value = strings.TrimSpace(value)
	return strings.Trim(value, `"`)
}

// parseDirectoryServers splits "(host1:389:636, host2:389)" into its server entries.
func parseDirectoryServers(value string) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '(', ')', ' ', '\t', '\n', '\r', '"':
			return -1
		}
		return r
	}, value)

	var servers []string
	for _, s := range strings.Split(cleaned, ",") {
		if s != "" {
			servers = append(servers, s)
		}
	}
	return servers
}
