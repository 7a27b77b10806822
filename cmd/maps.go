package main

import (
	"encoding/csv"
	"io"
	"log"
	"os"
	"strings"
)

// LocationMap links a library location to a floor plan or map page
type LocationMap struct {
	Library  string
	Location string
	URL      string
}

func (svc *ServiceContext) initLocationMaps() {
	log.Printf("Initializing location maps data...")
	svc.LocationMaps = make([]LocationMap, 0)
	if svc.Rules.LocationMapsFile == "" {
		log.Printf("No location maps configured")
		return
	}

	mapsFile, err := os.Open(svc.Rules.LocationMapsFile)
	if err != nil {
		log.Printf("ERROR: Unable to read location maps data: %s", err.Error())
		return
	}
	defer mapsFile.Close()

	svc.LocationMaps = readLocationMaps(mapsFile)
	log.Printf("Location maps initialization COMPLETE: %d maps", len(svc.LocationMaps))
}

// readLocationMaps parses LIBRARY,LOCATION,URL rows. Lines starting with # are comments.
func readLocationMaps(r io.Reader) []LocationMap {
	maps := make([]LocationMap, 0)
	csvReader := csv.NewReader(r)
	csvReader.Comment = '#'
	csvReader.FieldsPerRecord = -1
	for {
		line, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("ERROR: Unable to parse location maps data: %s", err.Error())
			continue
		}
		if len(line) < 3 {
			log.Printf("WARN: skipping short location map row %v", line)
			continue
		}
		maps = append(maps, LocationMap{
			Library:  strings.TrimSpace(line[0]),
			Location: strings.TrimSpace(line[1]),
			URL:      strings.TrimSpace(line[2]),
		})
	}
	return maps
}

// locationHref finds the map for a library location. An exact location match
// wins over a library wide row with an empty location.
func (svc *ServiceContext) locationHref(library string, location string) string {
	if library == "" {
		return ""
	}
	fallback := ""
	for _, m := range svc.LocationMaps {
		if m.Library != library {
			continue
		}
		if m.Location == location && location != "" {
			return m.URL
		}
		if m.Location == "" && fallback == "" {
			fallback = m.URL
		}
	}
	return fallback
}
