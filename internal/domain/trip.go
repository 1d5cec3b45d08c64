// Package domain contains the core data types for the Crewdeck scheduling
// subsystem. This package has zero internal dependencies and is imported by
// every other internal package (schedule, report, repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// TripType classifies a calendar trip.
type TripType string

const (
	TripGuest      TripType = "guest"       // guest charter
	TripBoss       TripType = "boss"        // owner / family use
	TripDelivery   TripType = "delivery"    // vessel repositioning
	TripYardPeriod TripType = "yard_period" // maintenance / shipyard period
)

// TripTypes lists all valid trip types in display order.
var TripTypes = []TripType{TripGuest, TripBoss, TripDelivery, TripYardPeriod}

// Valid reports whether t is one of the known trip types.
func (t TripType) Valid() bool {
	switch t {
	case TripGuest, TripBoss, TripDelivery, TripYardPeriod:
		return true
	}
	return false
}

// Department identifies the crew department responsible for a yard-period trip.
type Department string

const (
	DeptBridge      Department = "bridge"
	DeptDeck        Department = "deck"
	DeptEngineering Department = "engineering"
	DeptInterior    Department = "interior"
	DeptGalley      Department = "galley"
)

// Departments lists all valid departments in display order.
var Departments = []Department{DeptBridge, DeptDeck, DeptEngineering, DeptInterior, DeptGalley}

// Valid reports whether d is one of the known departments.
func (d Department) Valid() bool {
	switch d {
	case DeptBridge, DeptDeck, DeptEngineering, DeptInterior, DeptGalley:
		return true
	}
	return false
}

// Trip is a date-ranged, typed event shown on a shared vessel calendar.
// StartDate and EndDate are inclusive: a one-day trip has StartDate == EndDate.
// Department is set only for yard-period trips, where it drives department-mode
// calendar coloring; it is nil for every other type.
type Trip struct {
	ID         uuid.UUID
	VesselID   uuid.UUID
	Type       TripType
	Title      string
	StartDate  Date
	EndDate    Date
	Department *Department
	Notes      string
	CreatedBy  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
