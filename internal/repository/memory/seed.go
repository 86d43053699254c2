package memory

import (
	"encoding/base64"
	"fmt"

	"adminapi/internal/model"
)

// Demo credential table. Both accounts share the demo password.
var seedAccounts = []model.Account{
	{ID: 1, Name: "Admin User", Email: "admin@example.com", Password: "password123", Role: model.RoleAdmin},
	{ID: 2, Name: "Editor User", Email: "editor@example.com", Password: "password123", Role: model.RoleEditor},
}

var seedUsers = func() []model.User {
	joined := []string{
		"2023-01-15", "2023-03-22", "2023-05-10", "2023-07-04",
		"2023-09-18", "2023-11-30", "2024-01-08", "2024-03-14",
		"2024-06-21", "2024-09-05",
	}
	names := []struct {
		name string
		role string
	}{
		{"Alice Johnson", model.RoleAdmin},
		{"Bob Smith", model.RoleEditor},
		{"Carol White", model.RoleViewer},
		{"David Brown", model.RoleEditor},
		{"Eva Martinez", model.RoleViewer},
		{"Frank Lee", model.RoleAdmin},
		{"Grace Kim", model.RoleEditor},
		{"Henry Wilson", model.RoleViewer},
		{"Iris Chen", model.RoleEditor},
		{"Jack Davis", model.RoleViewer},
	}

	users := make([]model.User, 0, len(names))
	for i, n := range names {
		status := model.StatusActive
		if i%4 == 0 {
			status = model.StatusInactive
		}
		users = append(users, model.User{
			ID:     i + 1,
			Name:   n.name,
			Email:  fmt.Sprintf("user%d@example.com", i+1),
			Role:   n.role,
			Status: status,
			Joined: joined[i],
		})
	}
	return users
}()

var (
	seedTxt = base64.StdEncoding.EncodeToString([]byte(
		"Hello, this is a sample text file.\n\n" +
			"It contains multiple lines of plain text.\n" +
			"Use the File Manager viewer to read the full content.\n\n" +
			"- Line four\n- Line five\n- Line six\n"))

	seedCSV = base64.StdEncoding.EncodeToString([]byte(
		"Name,Email,Department,Salary\n" +
			"Alice,alice@example.com,Engineering,95000\n" +
			"Bob,bob@example.com,Marketing,75000\n" +
			"Carol,carol@example.com,Sales,80000\n" +
			"Dave,dave@example.com,Engineering,102000\n" +
			"Eva,eva@example.com,HR,68000\n"))

	// Minimal 8x8 PNG, enough for the image viewer to render.
	seedPNG = "iVBORw0KGgoAAAANSUhEUgAAAAgAAAAICAYAAADED76LAAAAS0lEQVQoU2Nk" +
		"IIDQ/////wz/GQiAAKg4sQoYGBgYGBiIVcGAgYGBgYGBiJUMDAwMDAwMJCsg" +
		"BhYWFhYWFhawABUmVgUjAgAYLBEJ0QIKRAAAAABJRU5ErkJggg=="
)

var seedFiles = []model.FileRecord{
	{
		ID: 1, Name: "readme.txt", MimeType: "text/plain", Size: 142,
		Description: "Project readme and notes", Tags: []string{"docs", "readme"},
		Uploaded: "2025-11-01", Project: "docs", Folder: "",
		ContentBase64: seedTxt,
	},
	{
		ID: 2, Name: "employees.csv", MimeType: "text/csv", Size: 185,
		Description: "Employee list export", Tags: []string{"hr", "data", "export"},
		Uploaded: "2025-12-15", Project: "hr", Folder: "reports",
		ContentBase64: seedCSV,
	},
	{
		ID: 3, Name: "logo.png", MimeType: "image/png", Size: 256,
		Description: "Company logo placeholder", Tags: []string{"image", "brand"},
		Uploaded: "2026-01-10", Project: "brand", Folder: "assets",
		ContentBase64: seedPNG,
	},
}

var seedPresets = []model.PresetLocation{
	{ID: 1, Name: "Eiffel Tower", Lat: 48.858, Lng: 2.294, Type: "landmark", Description: "Paris, France", Project: "infrastructure"},
	{ID: 2, Name: "Colosseum", Lat: 41.890, Lng: 12.492, Type: "landmark", Description: "Rome, Italy", Project: "infrastructure"},
	{ID: 3, Name: "Sagrada Família", Lat: 41.404, Lng: 2.174, Type: "landmark", Description: "Barcelona, Spain", Project: "infrastructure"},
	{ID: 4, Name: "Brandenburg Gate", Lat: 52.516, Lng: 13.377, Type: "landmark", Description: "Berlin, Germany", Project: "infrastructure"},
	{ID: 5, Name: "Acropolis", Lat: 37.971, Lng: 23.726, Type: "landmark", Description: "Athens, Greece", Project: "infrastructure"},
	{ID: 6, Name: "Schiphol Airport", Lat: 52.310, Lng: 4.768, Type: "airport", Description: "Amsterdam, Netherlands", Project: "logistics"},
	{ID: 7, Name: "Heathrow Airport", Lat: 51.470, Lng: -0.454, Type: "airport", Description: "London, UK", Project: "logistics"},
	{ID: 8, Name: "Charles de Gaulle", Lat: 49.009, Lng: 2.548, Type: "airport", Description: "Paris, France", Project: "logistics"},
	{ID: 9, Name: "Port of Rotterdam", Lat: 51.900, Lng: 4.480, Type: "port", Description: "Rotterdam, Netherlands", Project: "logistics"},
	{ID: 10, Name: "Port of Antwerp", Lat: 51.260, Lng: 4.400, Type: "port", Description: "Antwerp, Belgium", Project: "logistics"},
	{ID: 11, Name: "CERN", Lat: 46.234, Lng: 6.055, Type: "research", Description: "Geneva, Switzerland", Project: "research"},
	{ID: 12, Name: "ESA HQ", Lat: 48.797, Lng: 2.223, Type: "research", Description: "Paris, France", Project: "research"},
}

func seed(s *Store) {
	s.Accounts.accounts = append([]model.Account(nil), seedAccounts...)
	s.Users.users = append([]model.User(nil), seedUsers...)
	s.Files.files = append([]model.FileRecord(nil), seedFiles...)
	s.Presets.presets = append([]model.PresetLocation(nil), seedPresets...)
}

// HistoryMarkers returns the static financial-centre markers.
func HistoryMarkers() []model.HistoryMarker {
	return append([]model.HistoryMarker(nil), historyMarkers...)
}

// Regions returns the static world-region FeatureCollection.
func Regions() model.RegionCollection {
	out := regionCollection
	out.Features = append([]model.RegionFeature(nil), regionCollection.Features...)
	return out
}

var historyMarkers = []model.HistoryMarker{
	{ID: 1, Name: "New York", Lat: 40.71, Lng: -74.01, Value: 1.082, Change: 0.15, Project: "finance"},
	{ID: 2, Name: "London", Lat: 51.51, Lng: -0.13, Value: 0.856, Change: -0.23, Project: "finance"},
	{ID: 3, Name: "Tokyo", Lat: 35.69, Lng: 139.69, Value: 148.5, Change: 0.85, Project: "analytics"},
	{ID: 4, Name: "Frankfurt", Lat: 50.11, Lng: 8.68, Value: 1.082, Change: 0.12, Project: "finance"},
	{ID: 5, Name: "Sydney", Lat: -33.87, Lng: 151.21, Value: 1.534, Change: -0.45, Project: "global"},
	{ID: 6, Name: "Toronto", Lat: 43.65, Lng: -79.38, Value: 1.357, Change: 0.08, Project: "global"},
	{ID: 7, Name: "Singapore", Lat: 1.35, Lng: 103.82, Value: 1.341, Change: -0.11, Project: "analytics"},
	{ID: 8, Name: "Zurich", Lat: 47.38, Lng: 8.54, Value: 0.902, Change: 0.33, Project: "finance"},
	{ID: 9, Name: "Hong Kong", Lat: 22.32, Lng: 114.17, Value: 7.823, Change: -0.62, Project: "analytics"},
	{ID: 10, Name: "Dubai", Lat: 25.20, Lng: 55.27, Value: 3.673, Change: 0.21, Project: "global"},
	{ID: 11, Name: "São Paulo", Lat: -23.55, Lng: -46.63, Value: 5.013, Change: 0.38, Project: "global"},
	{ID: 12, Name: "Mumbai", Lat: 19.08, Lng: 72.88, Value: 83.5, Change: 0.52, Project: "analytics"},
	{ID: 13, Name: "Shanghai", Lat: 31.23, Lng: 121.47, Value: 7.254, Change: -0.18, Project: "analytics"},
	{ID: 14, Name: "Johannesburg", Lat: -26.20, Lng: 28.04, Value: 18.32, Change: -0.41, Project: "global"},
	{ID: 15, Name: "Seoul", Lat: 37.57, Lng: 126.98, Value: 1325.0, Change: 1.24, Project: "analytics"},
}

var regionCollection = model.RegionCollection{
	Type: "FeatureCollection",
	Features: []model.RegionFeature{
		regionFeature(1, "North America", 88, "370M", "$28T", "+2.3%", "analytics", [4][2]float64{{-130, 25}, {-60, 25}, {-60, 55}, {-130, 55}}),
		regionFeature(2, "Western Europe", 92, "190M", "$8.2T", "+1.8%", "finance", [4][2]float64{{-10, 36}, {20, 36}, {20, 55}, {-10, 55}}),
		regionFeature(3, "Eastern Europe", 67, "120M", "$2.1T", "+3.1%", "global", [4][2]float64{{20, 44}, {40, 44}, {40, 60}, {20, 60}}),
		regionFeature(4, "East Asia", 79, "1.6B", "$18T", "+4.5%", "analytics", [4][2]float64{{100, 20}, {145, 20}, {145, 45}, {100, 45}}),
		regionFeature(5, "South Asia", 58, "1.9B", "$4.5T", "+6.2%", "global", [4][2]float64{{60, 5}, {100, 5}, {100, 35}, {60, 35}}),
		regionFeature(6, "Sub-Saharan Africa", 41, "1.1B", "$1.8T", "+3.7%", "global", [4][2]float64{{-20, -35}, {50, -35}, {50, 10}, {-20, 10}}),
		regionFeature(7, "Latin America", 54, "430M", "$4.2T", "+2.8%", "global", [4][2]float64{{-82, -55}, {-34, -55}, {-34, 14}, {-82, 14}}),
		regionFeature(8, "Middle East", 73, "250M", "$3.9T", "+3.4%", "finance", [4][2]float64{{32, 12}, {65, 12}, {65, 38}, {32, 38}}),
	},
}

// regionFeature builds a rectangular region polygon, closing the ring.
func regionFeature(id int, name string, value int, population, gdp, growth, project string, corners [4][2]float64) model.RegionFeature {
	ring := make([][2]float64, 0, 5)
	for _, c := range corners {
		ring = append(ring, c)
	}
	ring = append(ring, corners[0])
	return model.RegionFeature{
		Type: "Feature",
		Properties: model.RegionProperties{
			ID: id, Name: name, Value: value,
			Population: population, GDP: gdp, Growth: growth, Project: project,
		},
		Geometry: model.RegionGeometry{Type: "Polygon", Coordinates: [][][2]float64{ring}},
	}
}
