package smoke

import "os"

// ShowHelp prints usage information for the smoke tool.
func ShowHelp() {
	_, _ = os.Stdout.WriteString(`ProInvestiX Refresh Smoke Tool
==============================

Signs in, invalidates the access token and fires concurrent authenticated
requests. Passes when every request succeeds and the backend saw exactly one
token refresh.

Usage:
  go run ./cmd/smoke [options]

Options:
  -url string
        Backend root URL (default "http://localhost:9080")
  -prefix string
        API mount point (default "/api/v1")
  -email string
        Account email (default "smoke@proinvestix.local")
  -password string
        Account password (default "smoke-password")
  -register
        Register the account when login fails (default true)
  -requests int
        Number of authenticated requests (default 200)
  -workers int
        Number of concurrent workers (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 30s)
  -verbose
        Log every failed request
  -help
        Show this help message

Examples:
  # Against a local stub backend
  go run ./cmd/stubserver &
  go run ./cmd/smoke -requests 500 -workers 32
`)
}
