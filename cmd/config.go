package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// AlmaConfig wraps up the config for Alma API access
type AlmaConfig struct {
	URL    string
	APIKey string
}

// DBConfig contains the optional Postgres settings for hidden item policies
type DBConfig struct {
	Host string
	Port int
	Name string
	User string
	Pass string
}

// HoldingsRules are the local business rules applied to holdings
type HoldingsRules struct {
	Source             string   `yaml:"source"`
	ItemPolicyToHide   []string `yaml:"item_policy_to_hide"`
	TextFieldNames     []string `yaml:"text_field_names"`
	GroupBy            string   `yaml:"group_by"`
	InventoryTypes     []string `yaml:"inventory_types"`
	DateFormat         string   `yaml:"date_format"`
	SummaryWorkers     int      `yaml:"summary_workers"`
	LocationMapsFile   string   `yaml:"location_maps_file"`
	UnassignedLocation string   `yaml:"unassigned_location"`
}

// ServiceConfig defines all of the holdings service configuration parameters
type ServiceConfig struct {
	Port   int
	JWTKey string
	Alma   AlmaConfig
	DB     DBConfig
	Rules  HoldingsRules
}

func defaultRules() HoldingsRules {
	return HoldingsRules{
		Source:             "Solr",
		TextFieldNames:     []string{"notes", "holdings_notes", "summary", "supplements", "indexes"},
		GroupBy:            "location",
		DateFormat:         "02.01.2006",
		SummaryWorkers:     1,
		LocationMapsFile:   "./data/location_maps.csv",
		UnassignedLocation: "UNASSIGNED",
	}
}

// loadRules reads the holdings rules yaml file on top of the defaults
func loadRules(filename string) (HoldingsRules, error) {
	rules := defaultRules()
	if filename == "" {
		return rules, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return rules, fmt.Errorf("unable to read rules %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return rules, fmt.Errorf("unable to parse rules %s: %w", filename, err)
	}
	rules.normalize()
	return rules, nil
}

// normalize patches up values a rules file may have left blank or invalid
func (r *HoldingsRules) normalize() {
	def := defaultRules()
	if r.Source == "" {
		r.Source = def.Source
	}
	if len(r.TextFieldNames) == 0 {
		r.TextFieldNames = def.TextFieldNames
	}
	if r.GroupBy != "location" && r.GroupBy != "holding" {
		log.Printf("WARN: unsupported group_by [%s]; using %s", r.GroupBy, def.GroupBy)
		r.GroupBy = def.GroupBy
	}
	if r.DateFormat == "" {
		r.DateFormat = def.DateFormat
	}
	if r.SummaryWorkers < 1 {
		r.SummaryWorkers = 1
	}
	if r.UnassignedLocation == "" {
		r.UnassignedLocation = def.UnassignedLocation
	}
	r.ItemPolicyToHide = nonemptyValues(r.ItemPolicyToHide)
}

// wantsElectronic reports whether electronic or digital inventory is configured
func (r *HoldingsRules) wantsElectronic() bool {
	for _, t := range r.InventoryTypes {
		if t == "e_avail" || t == "d_avail" {
			return true
		}
	}
	return false
}

// workers is the size of the holdings fetch pool
func (r *HoldingsRules) workers() int {
	if r.SummaryWorkers < 1 {
		return 1
	}
	return r.SummaryWorkers
}

func nonemptyValues(val []string) []string {
	var res []string
	for _, s := range val {
		if s = strings.TrimSpace(s); s != "" {
			res = append(res, s)
		}
	}
	return res
}

// LoadConfig will load the service configuration from env/cmdline
func loadConfiguration() *ServiceConfig {
	// a local .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded environment from .env")
	}

	var cfg ServiceConfig
	var rulesFile string
	flag.IntVar(&cfg.Port, "port", 8080, "Service port (default 8080)")
	flag.StringVar(&cfg.JWTKey, "jwtkey", os.Getenv("JWT_KEY"), "JWT signature key")
	flag.StringVar(&cfg.Alma.URL, "alma", "https://api-eu.hosted.exlibrisgroup.com/almaws/v1", "Alma API URL")
	flag.StringVar(&cfg.Alma.APIKey, "apikey", os.Getenv("ALMA_API_KEY"), "Alma API key")
	flag.StringVar(&rulesFile, "rules", "", "Holdings rules yml file")

	// optional hidden item policy database
	flag.StringVar(&cfg.DB.Host, "dbhost", "", "Database host")
	flag.IntVar(&cfg.DB.Port, "dbport", 5432, "Database port")
	flag.StringVar(&cfg.DB.Name, "dbname", "", "Database name")
	flag.StringVar(&cfg.DB.User, "dbuser", "", "Database user")
	flag.StringVar(&cfg.DB.Pass, "dbpass", os.Getenv("DB_PASS"), "Database password")
	flag.Parse()

	if cfg.Alma.URL == "" {
		log.Fatal("alma param is required")
	} else {
		log.Printf("Alma API endpoint: %s", cfg.Alma.URL)
	}
	if cfg.Alma.APIKey == "" {
		log.Fatal("apikey param is required")
	}
	if cfg.JWTKey == "" {
		log.Printf("WARN: no jwtkey; all lookups will be anonymous")
	}

	rules, err := loadRules(rulesFile)
	if err != nil {
		log.Fatal(err.Error())
	}
	cfg.Rules = rules
	log.Printf("Holdings rules: group by %s, %d hidden policies, %d summary workers",
		cfg.Rules.GroupBy, len(cfg.Rules.ItemPolicyToHide), cfg.Rules.SummaryWorkers)

	return &cfg
}
