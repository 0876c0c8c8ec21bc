package devutil

import (
	"path/filepath"
	"sort"
	"strings"
)

func EnumerateSerialPorts() []string {
	list, _ := filepath.Glob("/dev/cu.*")
	var ports []string
	for _, p := range list {
		// Skip built-in endpoints that are definitely not a dev board.
		if strings.Contains(p, "Bluetooth") || strings.Contains(p, "iPhone") {
			continue
		}
		ports = append(ports, p)
	}
	sort.Strings(ports)
	return ports
}
