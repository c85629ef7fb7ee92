package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Download is a file attached to a product: software, manuals, CAD drawings.
type Download struct {
	ID           string
	Title        string
	Summary      string
	FileType     string
	Version      string
	SizeBytes    string
	ReleasedOn   time.Time
	Platforms    []string
	DownloadURL  string
	Mirrors      []Mirror
	MinOSVersion string
	Deprecated   bool
	Note         string
}

// Mirror is an alternative download location.
type Mirror struct {
	Label string
	URL   string
}

// Download groups, in tab order.
const (
	DownloadGroupSoftware = "software"
	DownloadGroupManual   = "manual"
	DownloadGroupCAD      = "cad-drawings"
	DownloadGroupOther    = "other"
)

// DownloadGroups is the tabbed view of a product's downloads.
type DownloadGroups struct {
	Software   []Download
	Manuals    []Download
	CAD        []Download
	Other      []Download
	DefaultTab string
}

// GroupDownloads sorts downloads into tabs by file type and title. A PDF manual whose
// title also mentions CAD is listed under both tabs.
func GroupDownloads(downloads []Download) DownloadGroups {
	var g DownloadGroups

	for _, d := range downloads {
		ft := strings.ToLower(d.FileType)
		title := strings.ToLower(d.Title)
		placed := false

		if ft == "exe" || ft == "msi" || ft == "dmg" {
			g.Software = append(g.Software, d)
			placed = true
		}

		if ft == "pdf" && strings.Contains(title, "manual") {
			g.Manuals = append(g.Manuals, d)
			placed = true
		}

		if ft == "dwg" || ft == "dxf" || strings.Contains(title, "cad") {
			g.CAD = append(g.CAD, d)
			placed = true
		}

		if !placed {
			g.Other = append(g.Other, d)
		}
	}

	switch {
	case len(g.Software) > 0:
		g.DefaultTab = DownloadGroupSoftware
	case len(g.Manuals) > 0:
		g.DefaultTab = DownloadGroupManual
	case len(g.CAD) > 0:
		g.DefaultTab = DownloadGroupCAD
	default:
		g.DefaultTab = DownloadGroupOther
	}

	return g
}

// FormatFileSize renders a byte count from the backend's string field.
func FormatFileSize(bytes string) string {
	size, err := strconv.ParseInt(strings.TrimSpace(bytes), 10, 64)
	if err != nil {
		return "0 bytes"
	}

	const (
		kib = 1 << 10
		mib = 1 << 20
		gib = 1 << 30
	)

	switch {
	case size >= gib:
		return fmt.Sprintf("%.2f GB", float64(size)/gib)
	case size >= mib:
		return fmt.Sprintf("%.2f MB", float64(size)/mib)
	case size >= kib:
		return fmt.Sprintf("%.2f KB", float64(size)/kib)
	default:
		return fmt.Sprintf("%d bytes", size)
	}
}
