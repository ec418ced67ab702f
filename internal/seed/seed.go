// Package seed loads the reference price lists into the catalog tables
// at startup. The seed is idempotent: records are keyed on their
// natural identity and re-running it inserts nothing new.
package seed

import (
	"database/sql"
	"fmt"

	"liftquote/internal/catalog"
)

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
}

// Run executes the startup seed in an idempotent way.
func Run(db *sql.DB) (Stats, error) {
	tx, err := db.Begin()
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}

	if err := seedControl(tx, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}
	if err := seedTraction(tx, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}
	if err := seedMisc(tx, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func seedControl(tx *sql.Tx, stats *Stats) error {
	for _, c := range controlRecords {
		res, err := tx.Exec(`
			INSERT INTO control_catalog (model, power_kw, adapted_current_a, price, per_floor_delta, no_machine_room_delta, through_door_delta)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (model, power_kw) DO NOTHING
		`, c.Model, c.PowerKW, c.AdaptedCurrentA, c.Price, c.PerFloorDelta, c.NoMachineRoomDelta, c.ThroughDoorDelta)
		if err != nil {
			return fmt.Errorf("insert control record %s/%gkW: %w", c.Model, c.PowerKW, err)
		}
		if err := countInsert(res, stats); err != nil {
			return err
		}
	}
	return nil
}

func seedTraction(tx *sql.Tx, stats *Stats) error {
	for _, t := range tractionRecords {
		res, err := tx.Exec(`
			INSERT INTO traction_catalog (model, load_kg, speed_ms, ratio, machine_price, frame_price, control_power_kw, rated_power_kw)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (model, load_kg, speed_ms, ratio) DO NOTHING
		`, t.Model, t.LoadKg, t.SpeedMS, t.Ratio, t.MachinePrice, t.FramePrice, t.ControlPowerKW, t.RatedPowerKW)
		if err != nil {
			return fmt.Errorf("insert traction record %s: %w", t.Model, err)
		}
		if err := countInsert(res, stats); err != nil {
			return err
		}
	}
	return nil
}

func seedMisc(tx *sql.Tx, stats *Stats) error {
	for _, m := range miscRecords {
		res, err := tx.Exec(`
			INSERT INTO misc_catalog (name, spec, price)
			VALUES (?, ?, ?)
			ON CONFLICT (name, COALESCE(spec, '')) DO NOTHING
		`, m.Name, m.Spec, m.Price)
		if err != nil {
			return fmt.Errorf("insert misc record %q: %w", m.Name, err)
		}
		if err := countInsert(res, stats); err != nil {
			return err
		}
	}
	return nil
}

func countInsert(res sql.Result, stats *Stats) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	stats.Inserts += int(affected)
	return nil
}

// Reference price lists. Prices are all-inclusive.
var controlRecords = []catalog.ControlRecord{
	{Model: catalog.FamilyA, PowerKW: 5.5, AdaptedCurrentA: 13, Price: 8800, PerFloorDelta: 300, NoMachineRoomDelta: 1500, ThroughDoorDelta: 800},
	{Model: catalog.FamilyA, PowerKW: 7.5, AdaptedCurrentA: 17, Price: 9600, PerFloorDelta: 300, NoMachineRoomDelta: 1500, ThroughDoorDelta: 800},
	{Model: catalog.FamilyA, PowerKW: 11, AdaptedCurrentA: 25, Price: 10800, PerFloorDelta: 300, NoMachineRoomDelta: 1500, ThroughDoorDelta: 800},
	{Model: catalog.FamilyA, PowerKW: 15, AdaptedCurrentA: 32, Price: 12200, PerFloorDelta: 300, NoMachineRoomDelta: 1500, ThroughDoorDelta: 800},
	{Model: catalog.FamilyA, PowerKW: 18.5, AdaptedCurrentA: 39, Price: 13600, PerFloorDelta: 300, NoMachineRoomDelta: 1500, ThroughDoorDelta: 800},
	{Model: catalog.FamilyA, PowerKW: 22, AdaptedCurrentA: 45, Price: 15200, PerFloorDelta: 300, NoMachineRoomDelta: 1500, ThroughDoorDelta: 800},
	{Model: catalog.FamilyA, PowerKW: 30, AdaptedCurrentA: 60, Price: 17800, PerFloorDelta: 300, NoMachineRoomDelta: 1500, ThroughDoorDelta: 800},
	{Model: catalog.FamilyB, PowerKW: 11, AdaptedCurrentA: 25, Price: 14800, PerFloorDelta: 350, NoMachineRoomDelta: 1800, ThroughDoorDelta: 1000},
	{Model: catalog.FamilyB, PowerKW: 15, AdaptedCurrentA: 32, Price: 16400, PerFloorDelta: 350, NoMachineRoomDelta: 1800, ThroughDoorDelta: 1000},
	{Model: catalog.FamilyB, PowerKW: 18.5, AdaptedCurrentA: 39, Price: 18200, PerFloorDelta: 350, NoMachineRoomDelta: 1800, ThroughDoorDelta: 1000},
	{Model: catalog.FamilyB, PowerKW: 22, AdaptedCurrentA: 45, Price: 20400, PerFloorDelta: 350, NoMachineRoomDelta: 1800, ThroughDoorDelta: 1000},
	{Model: catalog.FamilyB, PowerKW: 30, AdaptedCurrentA: 60, Price: 23800, PerFloorDelta: 350, NoMachineRoomDelta: 1800, ThroughDoorDelta: 1000},
	{Model: catalog.FamilyB, PowerKW: 37, AdaptedCurrentA: 75, Price: 26800, PerFloorDelta: 350, NoMachineRoomDelta: 1800, ThroughDoorDelta: 1000},
}

var tractionRecords = []catalog.TractionRecord{
	{Model: "GETM2.5-630", LoadKg: 630, SpeedMS: 1.0, Ratio: "2:1", MachinePrice: 13800, FramePrice: 2600, ControlPowerKW: 5.5, RatedPowerKW: 4.9},
	{Model: "GETM3.0-800", LoadKg: 800, SpeedMS: 1.0, Ratio: "2:1", MachinePrice: 15600, FramePrice: 2800, ControlPowerKW: 7.5, RatedPowerKW: 6.7},
	{Model: "GETM3.0-800", LoadKg: 800, SpeedMS: 1.5, Ratio: "2:1", MachinePrice: 16800, FramePrice: 2800, ControlPowerKW: 11, RatedPowerKW: 9.8},
	{Model: "GETM4.0-1000", LoadKg: 1000, SpeedMS: 1.0, Ratio: "2:1", MachinePrice: 17800, FramePrice: 3200, ControlPowerKW: 11, RatedPowerKW: 8.2},
	{Model: "GETM4.0-1000", LoadKg: 1000, SpeedMS: 1.5, Ratio: "2:1", MachinePrice: 19400, FramePrice: 3200, ControlPowerKW: 15, RatedPowerKW: 12.3},
	{Model: "GETM4.0-1000", LoadKg: 1000, SpeedMS: 1.75, Ratio: "2:1", MachinePrice: 20600, FramePrice: 3200, ControlPowerKW: 15, RatedPowerKW: 14.3},
	{Model: "GETM4.5-1250", LoadKg: 1250, SpeedMS: 1.0, Ratio: "2:1", MachinePrice: 21400, FramePrice: 3600, ControlPowerKW: 11, RatedPowerKW: 10.2},
	{Model: "GETM4.5-1250", LoadKg: 1250, SpeedMS: 1.5, Ratio: "2:1", MachinePrice: 23200, FramePrice: 3600, ControlPowerKW: 18.5, RatedPowerKW: 15.4},
	{Model: "GETM5.5-1600", LoadKg: 1600, SpeedMS: 1.5, Ratio: "2:1", MachinePrice: 27600, FramePrice: 4200, ControlPowerKW: 22, RatedPowerKW: 19.6},
	{Model: "GETM6.0-2000", LoadKg: 2000, SpeedMS: 1.0, Ratio: "2:1", MachinePrice: 29800, FramePrice: 4800, ControlPowerKW: 18.5, RatedPowerKW: 16.3},
	{Model: "GETM5.0-1000", LoadKg: 1000, SpeedMS: 1.0, Ratio: "1:1", MachinePrice: 19600, FramePrice: 3400, ControlPowerKW: 15, RatedPowerKW: 13.4},
	{Model: "GETM5.0-1000", LoadKg: 1000, SpeedMS: 1.75, Ratio: "1:1", MachinePrice: 22400, FramePrice: 3400, ControlPowerKW: 22, RatedPowerKW: 18.6},
	{Model: "GETM6.5-1600", LoadKg: 1600, SpeedMS: 1.75, Ratio: "1:1", MachinePrice: 31200, FramePrice: 4600, ControlPowerKW: 30, RatedPowerKW: 26.8},
	// Price pending from the supplier; kept so matching still works and
	// the engine can flag the missing price on the line item.
	{Model: "GETM7.0-2000", LoadKg: 2000, SpeedMS: 2.0, Ratio: "1:1", MachinePrice: 0, FramePrice: 5200, ControlPowerKW: 37, RatedPowerKW: 33.5},
}

var miscRecords = []catalog.MiscRecord{
	{Name: "Door motor and controller", Spec: "includes inverter", Price: 2200},
	{Name: "EN1387 encoder (incl. mounting bracket)", Spec: "", Price: 1150},
	{Name: "On-site survey fee", Spec: "", Price: 600},
	{Name: "Packaging (wooden crate)", Spec: "Control cabinet", Price: 450},
	{Name: "Packaging (wooden crate)", Spec: "Machine frame", Price: 650},
}
