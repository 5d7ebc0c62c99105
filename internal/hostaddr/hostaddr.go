// Where: cli/internal/hostaddr/hostaddr.go
// What: Public base URL resolution for the launched server.
// Why: The LAN address is deployment-specific and must come from config or detection.
package hostaddr

import (
	"bytes"
	"fmt"
	"net"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// templateData is the context available to host_template expressions.
type templateData struct {
	IP   string
	Port int
}

// Resolver produces the PUBLIC_HOST value handed to the server.
type Resolver struct {
	// DetectIP returns the LAN-facing IPv4 address of this machine.
	// Defaults to DetectLANIP.
	DetectIP func() (string, error)
}

// Resolve returns the public base URL. An explicit value wins unchanged;
// otherwise tmpl is rendered against the detected LAN address. Detection
// failure falls back to the loopback address so the server still starts.
func (r Resolver) Resolve(explicit, tmpl string, port int) (string, error) {
	if v := strings.TrimSpace(explicit); v != "" {
		return v, nil
	}

	detect := r.DetectIP
	if detect == nil {
		detect = DetectLANIP
	}
	ip, err := detect()
	if err != nil || ip == "" {
		ip = "127.0.0.1"
	}

	rendered, err := renderHostTemplate(tmpl, templateData{IP: ip, Port: port})
	if err != nil {
		return "", err
	}
	return strings.TrimRight(rendered, "/"), nil
}

// DetectLANIP finds the address this machine would use to reach the wider
// network. The UDP dial sends no packets; it only asks the kernel for the
// route's source address.
func DetectLANIP() (string, error) {
	conn, err := net.Dial("udp4", "8.8.8.8:80")
	if err != nil {
		return "", err
	}
	defer conn.Close()

	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok || addr.IP == nil {
		return "", fmt.Errorf("unexpected local address %v", conn.LocalAddr())
	}
	return addr.IP.String(), nil
}

func renderHostTemplate(tmpl string, data templateData) (string, error) {
	t, err := template.New("host").Funcs(sprig.FuncMap()).Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("parse host template: %w", err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render host template: %w", err)
	}
	return buf.String(), nil
}
