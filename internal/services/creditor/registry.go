package creditor

import "veriban/internal/country"

// registryLength maps a country to the total creditor-identifier length in
// the SEPA scheme. Only Generate consults it; validation is structural gate
// plus checksum, as the scheme prescribes.
var registryLength = map[country.Code]int{
	"AT": 18, // Austria
	"BE": 20, // Belgium
	"BG": 23, // Bulgaria
	"CH": 15, // Switzerland
	"CY": 18, // Cyprus
	"CZ": 16, // Czechia
	"DE": 18, // Germany
	"DK": 16, // Denmark
	"EE": 20, // Estonia
	"ES": 16, // Spain
	"FI": 15, // Finland
	"FR": 13, // France
	"GB": 18, // United Kingdom
	"GR": 19, // Greece
	"HR": 21, // Croatia
	"HU": 20, // Hungary
	"IE": 13, // Ireland
	"IT": 23, // Italy
	"LT": 19, // Lithuania
	"LV": 21, // Latvia
	"MC": 13, // Monaco
	"MT": 20, // Malta
	"NL": 19, // Netherlands
	"NO": 15, // Norway
	"PL": 18, // Poland
	"PT": 13, // Portugal
	"RO": 18, // Romania
	"SE": 14, // Sweden
	"SI": 18, // Slovenia
	"SK": 18, // Slovakia
	"SM": 23, // San Marino
}

// RegistryLength exposes the expected total length for a country.
func RegistryLength(code country.Code) (int, bool) {
	n, ok := registryLength[code]
	return n, ok
}
