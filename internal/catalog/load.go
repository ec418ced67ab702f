package catalog

import (
	"database/sql"
	"fmt"
)

// Load reads the three catalog tables into an immutable Store. It is
// meant to run once at startup, after migrations and seed have
// completed; the engine only ever sees the in-memory view.
func Load(db *sql.DB) (*Store, error) {
	control, err := loadControl(db)
	if err != nil {
		return nil, err
	}
	traction, err := loadTraction(db)
	if err != nil {
		return nil, err
	}
	misc, err := loadMisc(db)
	if err != nil {
		return nil, err
	}
	return NewStore(control, traction, misc), nil
}

func loadControl(db *sql.DB) ([]ControlRecord, error) {
	rows, err := db.Query(`
		SELECT model, power_kw, adapted_current_a, price, per_floor_delta, no_machine_room_delta, through_door_delta
		FROM control_catalog
		ORDER BY model, power_kw, id
	`)
	if err != nil {
		return nil, fmt.Errorf("query control catalog: %w", err)
	}
	defer rows.Close()

	records := make([]ControlRecord, 0)
	for rows.Next() {
		var c ControlRecord
		if err := rows.Scan(&c.Model, &c.PowerKW, &c.AdaptedCurrentA, &c.Price, &c.PerFloorDelta, &c.NoMachineRoomDelta, &c.ThroughDoorDelta); err != nil {
			return nil, fmt.Errorf("scan control record: %w", err)
		}
		records = append(records, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate control catalog: %w", err)
	}
	return records, nil
}

func loadTraction(db *sql.DB) ([]TractionRecord, error) {
	rows, err := db.Query(`
		SELECT model, load_kg, speed_ms, ratio, machine_price, frame_price,
		       COALESCE(control_power_kw, 0), COALESCE(rated_power_kw, 0)
		FROM traction_catalog
		ORDER BY ratio, load_kg, speed_ms, id
	`)
	if err != nil {
		return nil, fmt.Errorf("query traction catalog: %w", err)
	}
	defer rows.Close()

	records := make([]TractionRecord, 0)
	for rows.Next() {
		var t TractionRecord
		if err := rows.Scan(&t.Model, &t.LoadKg, &t.SpeedMS, &t.Ratio, &t.MachinePrice, &t.FramePrice, &t.ControlPowerKW, &t.RatedPowerKW); err != nil {
			return nil, fmt.Errorf("scan traction record: %w", err)
		}
		records = append(records, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate traction catalog: %w", err)
	}
	return records, nil
}

func loadMisc(db *sql.DB) ([]MiscRecord, error) {
	rows, err := db.Query(`
		SELECT name, COALESCE(spec, ''), price
		FROM misc_catalog
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query misc catalog: %w", err)
	}
	defer rows.Close()

	records := make([]MiscRecord, 0)
	for rows.Next() {
		var m MiscRecord
		if err := rows.Scan(&m.Name, &m.Spec, &m.Price); err != nil {
			return nil, fmt.Errorf("scan misc record: %w", err)
		}
		records = append(records, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate misc catalog: %w", err)
	}
	return records, nil
}
