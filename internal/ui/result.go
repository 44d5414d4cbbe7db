package ui

import (
	"fmt"

	"github.com/muurk/devscan/internal/inventory"
)

// Found renders a match together with the record's detail fields.
func (r *Renderer) Found(id string, rec inventory.Record) {
	t := r.theme

	r.println(
		"",
		t.ScannedID.Render("Scanned ID: "+id),
		t.FoundTitle.Render(FoundMarker+" STATUS: DEVICE FOUND IN INVENTORY"),
		t.FoundDetail.Render(BranchMarker+" Prefix: "+rec.Prefix),
		t.FoundDetail.Render(BranchMarker+" Brand: "+rec.Brand),
		t.FoundDetail.Render(BranchMarker+" Type: "+rec.Type),
		t.FoundDetail.Render(LastMarker+" MAC: "+rec.MACAddress),
	)
	r.resultFooter()
}

// NotFound renders a miss.
func (r *Renderer) NotFound(id string) {
	t := r.theme

	r.println(
		"",
		t.ScannedID.Render("Scanned ID: "+id),
		t.MissTitle.Render(NotFoundMarker+" STATUS: DEVICE NOT IN INVENTORY"),
	)
	r.resultFooter()
}

func (r *Renderer) resultFooter() {
	r.println(r.theme.Rule.Render(rule("-", r.width)), "")
}

// Summary renders the end-of-session totals.
func (r *Renderer) Summary(scans, found int) {
	t := r.theme

	r.println(
		"",
		t.Banner.Render(rule("=", r.width)),
		t.Heading.Render("SCAN SESSION SUMMARY"),
		t.Rule.Render(rule("=", r.width)),
		fmt.Sprintf("Total Scans: %d", scans),
		"Devices Found: "+t.FoundCount.Render(fmt.Sprint(found)),
		"Devices Not Found: "+t.MissCount.Render(fmt.Sprint(scans-found)),
		t.Rule.Render(rule("=", r.width)),
		"",
	)
}
