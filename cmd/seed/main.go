package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/oksasatya/growth-sessions/config"
	"github.com/oksasatya/growth-sessions/internal/common/clock"
	"github.com/oksasatya/growth-sessions/internal/domain/calendar"
)

type demoUser struct {
	name, nickname, email string
	member                bool
}

var demoUsers = []demoUser{
	{"Grace Hopper", "ghopper", "grace@example.com", true},
	{"Ada Lovelace", "ada", "ada@example.com", true},
	{"Linus Guest", "linus", "", false},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	ids := make([]int64, 0, len(demoUsers))
	for _, u := range demoUsers {
		var id int64
		err := db.QueryRow(`
			INSERT INTO users (name, github_nickname, email, is_vehikl_member)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (github_nickname) DO UPDATE SET name = EXCLUDED.name
			RETURNING id
		`, u.name, u.nickname, u.email, u.member).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed user %s: %v", u.nickname, err)
		}
		ids = append(ids, id)
		fmt.Printf("seeded user: id=%d github=%s\n", id, u.nickname)
	}

	// One session per weekday of the current week, alternating owners and visibility.
	today := calendar.Today(&clock.DefaultClock{}, cfg.Location())
	for i, day := range calendar.Weekdays(today) {
		owner := ids[i%2]
		var limit any
		if i%3 == 0 {
			limit = 4
		}
		var id int64
		err := db.QueryRow(`
			INSERT INTO social_mobs (owner_id, title, topic, location, date, start_time, end_time, is_public, attendee_limit)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id
		`, owner,
			fmt.Sprintf("Mob #%d", i+1),
			"Pairing on whatever the group brings",
			"Discord Channel: Mob 1",
			day.ToDateString(),
			"15:30", "17:00",
			i%2 == 0,
			limit,
		).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed session on %s: %v", day, err)
		}
		attendee := ids[(i+1)%2]
		if _, err := db.Exec(`
			INSERT INTO social_mob_user (social_mob_id, user_id) VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, id, attendee); err != nil {
			log.Fatalf("failed to seed attendee: %v", err)
		}
		if _, err := db.Exec(`
			INSERT INTO comments (social_mob_id, user_id, content, created_at) VALUES ($1, $2, $3, $4)
		`, id, attendee, "Looking forward to it!", time.Now().UTC()); err != nil {
			log.Fatalf("failed to seed comment: %v", err)
		}
		fmt.Printf("seeded session: id=%d date=%s owner=%d\n", id, day, owner)
	}
}
