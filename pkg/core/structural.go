// pkg/core/structural.go
package core

// PopulateCarrier assigns fighters to a carrier.
type PopulateCarrier struct {
	Carrier  Identifier
	Fighters []Identifier
}

// PopulateWorld places agents into the world.
type PopulateWorld struct {
	Agents []Identifier
}

// Commit finalizes the world setup.
type Commit struct{}

func (PopulateCarrier) Family() Family { return FamilyStructural }
func (PopulateWorld) Family() Family   { return FamilyStructural }
func (Commit) Family() Family          { return FamilyStructural }

func (PopulateCarrier) Kind() string { return "populate carrier" }
func (PopulateWorld) Kind() string   { return "populate world" }
func (Commit) Kind() string          { return "commit" }

func (PopulateCarrier) structuralCommand() {}
func (PopulateWorld) structuralCommand()   {}
func (Commit) structuralCommand()          {}
