// Command tempo parses, converts, and calculates dates and times.
//
// Usage:
//
//	tempo parse "2024-06-24 10:17:32" --tz Asia/Tokyo
//	tempo convert 2024-06-24T10:17:32Z --to America/New_York
//	tempo add 2024-01-31 --months 1
//	tempo between 2024-01-01 2024-03-15 --unit days
//	tempo now --format rfc822 --locale fr
//	tempo formats
//
// Settings may also come from TEMPO_ environment variables and a YAML file
// named by --config or TEMPO_CONFIG.
package main

import "github.com/theory/tempo/internal/cli"

func main() {
	cli.Execute()
}
