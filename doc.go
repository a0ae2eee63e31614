/*
Package spritegen draws the small transparent PNG sprites used by the game:
24×24 debuff (status effect) icons and 32×32 ruined structure sprites.

Every sprite is a recipe of vector primitives (circles, arcs, lines, Bézier
curves, dashed outlines and some random jitter) rasterized on a Canvas,
copied into a transparent buffer, PNG encoded and returned as a base64
payload wrapped in a SpriteDescriptor together with a fresh UUID and the
echoed configuration.

The package provides a command line interface as well. To check the supported
commands type:

	$ spritegen --help

In case you wish to integrate the API in your own asset pipeline here is a simple example:

	package main

	import (
		"fmt"
		"math/rand"

		"github.com/tptassets/spritegen"
	)

	func main() {
		g := spritegen.NewDebuffIconGenerator(spritegen.Options{
			Rand: rand.New(rand.NewSource(42)),
		})

		desc, err := g.Generate(spritegen.DebuffConfig{DebuffType: spritegen.Slow})
		if err != nil {
			fmt.Printf("Error generating the icon: %s", err.Error())
			return
		}
		if err := desc.SaveToFile("slow.png"); err != nil {
			fmt.Printf("Error saving the icon: %s", err.Error())
		}
	}
*/
package spritegen
