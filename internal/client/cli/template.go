package cli

import "fmt"

const deviceListTemplate = `
=== RFID Modules ===

{{- if eq (len .) 0 }}
No modules known yet.

Modules appear after they register with the server.
{{ else }}
Found {{len .}} module(s):

{{- range . }}
- {{ .ID }}
   IP:     {{ .IP }}
   Mode:   {{ .Mode }}
   Active: {{ .IsActive }}{{ if .IsScan }}  (scanning){{ end }}
   Power:  {{ .CurrentHardPower }} dBm ({{ percent .CurrentHardPower }}%)
   {{- if .Status.ChipModel }}
   Chip:   {{ .Status.ChipModel }}
   {{- end }}
   {{- if .Status.BatteryPercent }}
   Battery: {{ .Status.BatteryPercent }}% ({{ .Status.PowerSource }})
   {{- end }}
   Scans:  {{ scanCount . }}

{{- end }}
{{- end }}
`

const scanListTemplate = `
=== Scan Results ===

{{- if eq (len .) 0 }}
No scan results yet.
{{ else }}
Found {{len .}} record(s), newest first:

{{- range . }}
- id={{ .ID }} epc={{ .EPC }}
   Device: {{ .DeviceID }}
   {{- if .Name }}
   Name:   {{ .Name }}
   {{- end }}
   RSSI:   {{ .ScanRSSI }}
   Seen:   {{ millis .ScanTimestamp }}

{{- end }}
{{- end }}
`

const scenarioTemplate = `
=== Scan Scenario ===

Active: {{ .IsActiveScenario }}
{{- if .ScanMode }}
Mode:   {{ .ScanMode }}
{{- end }}
`

const productListTemplate = `
=== Products ===

{{- if eq (len .) 0 }}
No products in the catalog.
{{ else }}
Found {{len .}} product(s):

{{- range . }}
- {{ .Name }}
   ID:     {{ .ID }}
   Weight: {{ .Weight }} g ({{ .Purity }})
   Price:  {{ .Price }}

{{- end }}
{{- end }}
`

const invoiceListTemplate = `
=== Invoices ===

{{- if eq (len .) 0 }}
No invoices yet.
{{ else }}
Found {{len .}} invoice(s):

{{- range . }}
- {{ .Number }}
   ID:      {{ .ID }}
   Items:   {{ len .Items }}
   Total:   {{ .Total }}
   Created: {{ millis .CreatedAt }}

{{- end }}
{{- end }}
`

const saleListTemplate = `
=== Sales ===

{{- if eq (len .) 0 }}
No sales yet.
{{ else }}
Found {{len .}} sale(s):

{{- range . }}
- sale {{ .ID }} (invoice {{ .InvoiceID }})
   Total:   {{ .Total }}
   Created: {{ millis .CreatedAt }}

{{- end }}
{{- end }}
`

const goldRateTemplate = `
=== Gold Rate ===

Price:   {{ .Price }} {{ .Currency }} / g
Updated: {{ millis .UpdatedAt }}
`

const prefsTemplate = `
=== Module Preferences ===

{{- if eq (len .) 0 }}
No preferences saved.

Use 'jrdclient prefs <id> <power> <mode> <on|off>' to save defaults.
{{ else }}

{{- range $id, $pref := . }}
- {{ $id }}
   Power:  {{ $pref.Power }} dBm
   Mode:   {{ $pref.Mode }}
   Active: {{ $pref.Active }}

{{- end }}
{{- end }}
`

func PrintUsage() {
	fmt.Println("Jewelry RFID Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  jrdclient [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version       Show version information")
	fmt.Println("  --config PATH   Path to config file (optional)")
	fmt.Println("  --server URL    Server URL (default: http://localhost:8080)")
	fmt.Println("  --socket URL    Websocket URL (default: derived from server URL)")
	fmt.Println("  --db PATH       Path to local database (default: jrdclient.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  login                        Login to server")
	fmt.Println("  logout                       Logout and drop the saved session")
	fmt.Println("  status                       Show session status")
	fmt.Println("  devices                      List RFID modules")
	fmt.Println("  scenario                     Show current scan scenario")
	fmt.Println("  serial <modules|scans>       List serial-connected modules or scan results")
	fmt.Println("  init [id...]                 Initialize modules from saved preferences")
	fmt.Println("  start-scan <mode> [id...]    Start scanning (Inventory, Scan, NewProduct)")
	fmt.Println("  stop-scan [id...]            Stop scanning")
	fmt.Println("  inventory [id...]            Run inventory scan until auto-stop or Ctrl+C")
	fmt.Println("  set-power <id> <percent>     Set module power (0-100%)")
	fmt.Println("  set-mode <id> <mode>         Set module scan mode")
	fmt.Println("  set-active <id> <on|off>     Enable/disable the RF path")
	fmt.Println("  clear-history <id> <mode>    Clear scan history for a mode")
	fmt.Println("  watch                        Stream realtime updates")
	fmt.Println("  products                     List products")
	fmt.Println("  invoices                     List invoices")
	fmt.Println("  invoice <product-id...>      Create an invoice")
	fmt.Println("  sales                        List sales")
	fmt.Println("  gold                         Show current gold rate")
	fmt.Println("  prefs [id] [power mode on|off]  Show or set module preferences")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  jrdclient login")
	fmt.Println("  jrdclient devices")
	fmt.Println("  jrdclient start-scan NewProduct esp-1")
	fmt.Println("  jrdclient set-power esp-1 58")
	fmt.Println("  jrdclient watch")
	fmt.Println("  jrdclient --server https://shop.example.com invoice 101 102")
}
