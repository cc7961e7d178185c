// Package ecs provides ECS adapters for smallworld's action dispatcher.
//
// The primary adapter is [NewDonburiSink], which bridges applied game
// actions (deck picks, placements, cancellations) into a [Donburi] world as
// typed events. Subscribe to [ActionEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	g.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
