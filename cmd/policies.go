package main

import (
	"database/sql"
	"fmt"
	"log"

	// postgres
	_ "github.com/lib/pq"
)

// initHiddenPolicies connects to the policy database and merges its
// hidden item policy codes into the configured hide list
func (svc *ServiceContext) initHiddenPolicies(cfg DBConfig) error {
	log.Printf("Connect to hidden item policy database %s@%s:%d/%s", cfg.User, cfg.Host, cfg.Port, cfg.Name)
	connStr := fmt.Sprintf("host=%s port=%d dbname=%s user=%s password=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.Name, cfg.User, cfg.Pass)
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return fmt.Errorf("unable to open policy database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("unable to reach policy database: %w", err)
	}
	svc.DB = db

	codes, err := loadHiddenPolicies(db)
	if err != nil {
		return err
	}
	svc.Rules.ItemPolicyToHide = mergePolicies(svc.Rules.ItemPolicyToHide, codes)
	log.Printf("%d item policies will be hidden", len(svc.Rules.ItemPolicyToHide))
	return nil
}

func loadHiddenPolicies(db *sql.DB) ([]string, error) {
	rows, err := db.Query("SELECT code FROM hidden_item_policies ORDER BY code")
	if err != nil {
		return nil, fmt.Errorf("unable to query hidden item policies: %w", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("unable to read hidden item policy: %w", err)
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}

// mergePolicies appends the database codes to the configured ones, dropping blanks and repeats
func mergePolicies(configured []string, fromDB []string) []string {
	set := newOrderedSet()
	set.add(nonemptyValues(configured)...)
	set.add(nonemptyValues(fromDB)...)
	return set.values()
}
