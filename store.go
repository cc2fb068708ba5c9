package main

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// errProfileNotFound is the only error the collaborator boundary promotes to
// the caller as "not found"; everything else is a store failure.
var errProfileNotFound = errors.New("profile not found")

const profileColumns = `id, first_name, last_name, age, about, interests, needs, latitude, longitude, gender`

func scanProfile(scan func(dest ...any) error) (*Profile, error) {
	var (
		p          Profile
		first      sql.NullString
		last       sql.NullString
		age        sql.NullInt64
		about      sql.NullString
		interests  pq.StringArray
		needs      pq.StringArray
		lat, lon   sql.NullFloat64
		gender     sql.NullString
	)
	if err := scan(&p.ID, &first, &last, &age, &about, &interests, &needs, &lat, &lon, &gender); err != nil {
		return nil, err
	}

	p.Name = strings.TrimSpace(first.String + " " + last.String)
	if age.Valid {
		a := int(age.Int64)
		p.Age = &a
	}
	p.Bio = about.String
	p.Interests = []string(interests)
	p.Needs = []string(needs)
	if lat.Valid {
		v := lat.Float64
		p.Latitude = &v
	}
	if lon.Valid {
		v := lon.Float64
		p.Longitude = &v
	}
	p.Gender = gender.String
	return &p, nil
}

// fetchUserProfile returns the requester's profile or errProfileNotFound.
func fetchUserProfile(db *sql.DB, userID string) (*Profile, error) {
	row := db.QueryRow(`SELECT `+profileColumns+` FROM profiles WHERE id = $1 AND deleted_at IS NULL`, userID)
	p, err := scanProfile(row.Scan)
	if err == sql.ErrNoRows {
		return nil, errProfileNotFound
	}
	return p, err
}

// fetchCandidateProfiles returns a bounded candidate pool with coarse
// pre-filtering pushed down to SQL: the requester, soft-deleted, suspended
// and stale profiles are excluded, allow/exclude lists are applied, and the
// gender/age filters derived from the prompt requirements (first) or the
// caller preferences (second) narrow the pool. Pre-filtering here is an
// optimization only; the ranker re-applies its own coverage policy in full.
func fetchCandidateProfiles(
	db *sql.DB,
	userID string,
	prefs *Preferences,
	r *RequirementSet,
	candidateIDs, excludeIDs []string,
	inactiveDays int,
	limit int,
	poolCap int,
) ([]*Profile, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + profileColumns + ` FROM profiles WHERE id <> $1`)
	sb.WriteString(` AND deleted_at IS NULL`)
	sb.WriteString(` AND COALESCE(is_suspended, FALSE) = FALSE`)
	sb.WriteString(` AND (last_active IS NULL OR last_active >= NOW() - make_interval(days => $2))`)
	args := []any{userID, inactiveDays}

	if len(candidateIDs) > 0 {
		args = append(args, pq.Array(candidateIDs))
		sb.WriteString(fmt.Sprintf(` AND id = ANY($%d)`, len(args)))
	}
	if len(excludeIDs) > 0 {
		args = append(args, pq.Array(excludeIDs))
		sb.WriteString(fmt.Sprintf(` AND NOT (id = ANY($%d))`, len(args)))
	}

	// Prompt-derived filters take precedence over caller preferences.
	gender := ""
	if r != nil && r.Gender != "" {
		gender = r.Gender
	} else if prefs != nil && prefs.GenderPreference != "" {
		gender = strings.ToLower(strings.TrimSpace(prefs.GenderPreference))
	}
	if gender != "" {
		args = append(args, gender)
		sb.WriteString(fmt.Sprintf(` AND gender = $%d`, len(args)))
	}

	var ageLo, ageHi int
	haveAge := false
	if r != nil && r.AgeRange != nil {
		ageLo, ageHi, haveAge = r.AgeRange.Min, r.AgeRange.Max, true
	} else if prefs != nil && len(prefs.AgeRange) == 2 {
		ageLo, ageHi, haveAge = prefs.AgeRange[0], prefs.AgeRange[1], true
	}
	if haveAge {
		args = append(args, ageLo)
		sb.WriteString(fmt.Sprintf(` AND age >= $%d`, len(args)))
		args = append(args, ageHi)
		sb.WriteString(fmt.Sprintf(` AND age <= $%d`, len(args)))
	}

	poolLimit := limit * 10
	if poolLimit > poolCap {
		poolLimit = poolCap
	}
	args = append(args, poolLimit)
	sb.WriteString(fmt.Sprintf(` LIMIT $%d`, len(args)))

	rows, err := db.Query(sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*Profile
	for rows.Next() {
		p, err := scanProfile(rows.Scan)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}
