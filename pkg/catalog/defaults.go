package catalog

import "image/color"

func hex(rgb uint32) color.RGBA {
	return color.RGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 0xff}
}

// DefaultTypes lists the residential fixtures the planner ships with
var DefaultTypes = []FixtureType{
	{
		ID:            "receptacle120",
		Name:          "Receptacle (120V)",
		Detail:        "Standard outlet",
		Color:         hex(0x60a5fa),
		Silhouette:    Box(0.28, 0.28, 0.1),
		WallMounted:   true,
		DefaultHeight: 0.35,
	},
	{
		ID:            "receptacle240",
		Name:          "Receptacle (240V)",
		Detail:        "Dryer/Range outlet",
		Color:         hex(0x3b82f6),
		Silhouette:    Box(0.3, 0.3, 0.1),
		WallMounted:   true,
		DefaultHeight: 0.45,
	},
	{
		ID:            "ceilingLight",
		Name:          "Ceiling Light",
		Detail:        "Main room luminaire",
		Color:         hex(0xfbbf24),
		Silhouette:    Sphere(0.18),
		DefaultHeight: 2.8,
	},
	{
		ID:            "wallSconce",
		Name:          "Wall Fixture",
		Detail:        "Wall-mounted fixture",
		Color:         hex(0xf59e0b),
		Silhouette:    Sphere(0.14),
		WallMounted:   true,
		DefaultHeight: 1.9,
	},
	{
		ID:            "appliancePlug",
		Name:          "Appliance Plug",
		Detail:        "Dedicated appliance point",
		Color:         hex(0x34d399),
		Silhouette:    Cylinder(0.12, 0.12, 0.12),
		DefaultHeight: 0.1,
	},
	{
		ID:            "usbOutlet",
		Name:          "USB Outlet",
		Detail:        "Low voltage charging point",
		Color:         hex(0x2dd4bf),
		Silhouette:    Box(0.26, 0.2, 0.08),
		WallMounted:   true,
		DefaultHeight: 1.1,
	},
}

// Default returns a catalog of DefaultTypes
func Default() *Catalog {
	c, err := New(DefaultTypes...)
	if err != nil {
		panic(err)
	}
	return c
}
