package edid

// LookupManufacturer resolves a 3-letter PNP ID to the registered company name.
func LookupManufacturer(id string) (string, bool) {
	name, ok := pnpRegistry[id]
	return name, ok
}
