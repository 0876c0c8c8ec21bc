package devutil

import (
	"golang.org/x/sys/windows/registry"
)

func EnumerateSerialPorts() []string {
	var ports []string
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, `HARDWARE\DEVICEMAP\SERIALCOMM`, registry.QUERY_VALUE)
	if err != nil {
		return nil
	}
	defer k.Close()
	names, err := k.ReadValueNames(0)
	if err != nil {
		return nil
	}
	for _, n := range names {
		v, _, err := k.GetStringValue(n)
		if err == nil {
			ports = append(ports, v)
		}
	}
	return ports
}

func getDefaultPort() string {
	ports := EnumerateSerialPorts()
	if len(ports) == 0 {
		return ""
	}
	return ports[0]
}
