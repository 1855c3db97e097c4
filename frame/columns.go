// SPDX-License-Identifier: MIT

package frame

// Column names read by the transforms.
const (
	ID1       = "id_1"
	ID2       = "id_2"
	Car       = "car"
	Bus       = "bus"
	Truck     = "truck"
	Route     = "route"
	ID        = "id"
	Timestamp = "timestamp"
)
