package domain

import "time"

// Stop sale reports. A stop sale is open until somebody renews sales
// upstream; RenewerName stays empty while it is open.

type PizzeriaStopSale struct {
	Department  string    `json:"department"`
	SaleType    string    `json:"sale_type"`
	StopReason  string    `json:"stop_reason"`
	StoppedAt   time.Time `json:"stopped_at"`
	StopperName string    `json:"stopper_name"`
	RenewerName string    `json:"renewer_name"`
	StopType    string    `json:"stop_type"`
}

func (s PizzeriaStopSale) Open() bool { return s.RenewerName == "" }

type StreetStopSale struct {
	Department  string    `json:"department"`
	Sector      string    `json:"sector"`
	Street      string    `json:"street"`
	StoppedAt   time.Time `json:"stopped_at"`
	StopperName string    `json:"stopper_name"`
	RenewerName string    `json:"renewer_name"`
}

func (s StreetStopSale) Open() bool { return s.RenewerName == "" }

type SectorStopSale struct {
	Department  string    `json:"department"`
	Sector      string    `json:"sector"`
	StoppedAt   time.Time `json:"stopped_at"`
	StopperName string    `json:"stopper_name"`
	RenewerName string    `json:"renewer_name"`
}

func (s SectorStopSale) Open() bool { return s.RenewerName == "" }

type IngredientStopSale struct {
	Department  string    `json:"department"`
	Ingredient  string    `json:"ingredient"`
	StopReason  string    `json:"stop_reason"`
	StoppedAt   time.Time `json:"stopped_at"`
	StopperName string    `json:"stopper_name"`
	RenewerName string    `json:"renewer_name"`
}

func (s IngredientStopSale) Open() bool { return s.RenewerName == "" }
