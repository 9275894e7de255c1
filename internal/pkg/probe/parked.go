package probe

import (
	"regexp"
	"strings"
)

// parkedRe matches page content that indicates a parked or placeholder
// domain rather than a living website. A 200 response matching any of these
// markers is not counted as alive.
var parkedRe = regexp.MustCompile(`(?is)` + strings.Join([]string{
	// Domain registrars whose names show up on their parking pages.
	`namecheap\.com`,
	`123reg\.co\.uk`,
	`godaddy\.com`,
	`easynic\.com`,
	`directnic\.com`,
	`dreamhost\.com`,
	`easily\.co\.uk`,
	`livetodot\.com`,
	`webhosting\.yahoo\.com`,
	`smallbusiness\.yahoo\.com`,
	`webmailer\.de`,
	// Companies which buy and park expired domains.
	`future media architects`,
	`sedoparking\.com`,
	`digimedia\.com`,
	`buydomains\.com`,
	`domainnamesales\.com`,
	`smartname\.com`,
	`1and1\.com`,
	`secureserver\.net`,
	`directdomains\.com`,
	`buydomainnames\.co\.uk`,
	`rmgserving\.com`,
	`domainfort\.com`,
	// Appears in comments on some Sedo Holding pages.
	`turing_cluster_prod`,
	// Empty shell served by some parking services.
	`<html><head></head><body><!-- vbe --></body></html>`,
	// Cookie line planted by some parking JavaScript.
	`document\.cookie = "jsc=1";`,
	`log_click\.php\?`,
	`domainpark`,
	`registrar parking`,
	`applyFrameKiller`,
	// Sales pitches for the domain itself.
	`full list of domains`,
	`domain names? for sale`,
	`(?:is|may ?be) (?:availiable )?for sale`,
	`for enquiries about this domain`,
	`domain(?: name)? is available`,
	`get your domain name`,
	`whois`,
	`has been reserved for future use`,
	// Plesk placeholder pages.
	`parallels\.com`,
	// Broken or default Apache pages.
	`site temporarily unavailable`,
	`403 Forbidden`,
	`<h1 align="center">It Worked!</h1>`,
	// Sponsored-listing link farms.
	`below are sponsored listings`,
	`related searches`,
	`requires javascript`,
}, "|"))

// IsParked reports whether the body looks like a parked domain page.
func IsParked(body string) bool {
	return parkedRe.MatchString(body)
}
