// Package drone defines the unit model for the sortie fleet: the Airframe
// base shared by every unit, the capability contracts a unit type may
// satisfy, and the concrete QuadCopter and FixedWingDrone unit types.
//
// A unit is an Airframe plus one or more capability contracts. Contracts are
// plain interfaces; the AdvancedRecon contract is the union of VisualCapture
// and SignalIntel and adds nothing of its own. Conformance is a compile-time
// property, enforced by the assertions in each unit's file.
//
// Every behavior narrates itself as a single line on the unit's output
// writer. Units write to os.Stdout unless redirected with SetOutput.
package drone
