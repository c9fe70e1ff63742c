// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package content holds the text of the Wi-Fi optimizer report and loads
// alternative outlines from YAML.
package content

import "github.com/pdiddy/wifi-report/pkg/types"

const (
	reportTitle    = "Intelligent Wi-Fi Router Placement Optimizer"
	reportSubtitle = "Project Report & Demonstration"
)

// WifiOptimizer returns the built-in report describing the router placement
// optimizer web application. Each call returns a fresh copy.
func WifiOptimizer() *types.Report {
	return &types.Report{
		Title:    reportTitle,
		Subtitle: reportSubtitle,
		Sections: []types.Section{
			overview(),
			architecture(),
			mathematics(),
			demonstration(),
		},
	}
}

func overview() types.Section {
	return types.Section{
		Title: "Project Overview",
		Blocks: []types.Block{
			types.Paragraph("This project is a scientific web application designed to optimize Wi-Fi router placement " +
				"within an indoor environment. By simulating Radio Frequency (RF) propagation, " +
				"it helps users identify maximum coverage areas and dead zones."),
		},
	}
}

func architecture() types.Section {
	return types.Section{
		Title: "How It Works (Architecture)",
		Blocks: []types.Block{
			types.Paragraph("The application follows a Client-Side Architecture, meaning it requires no backend server. " +
				"All calculations and rendering happen directly in the user's browser for maximum performance and privacy."),
			types.Bullet("Frontend: HTML5, CSS3, JavaScript (ES6+)"),
			types.Bullet("Rendering: HTML5 Canvas API (for high-performance pixel manipulation)"),
			types.Bullet("Physics Engine: Custom JavaScript implementation of RF models"),
			types.Spacer(),
		},
	}
}

func mathematics() types.Section {
	return types.Section{
		Title: "Mathematical Concepts",
		Blocks: []types.Block{
			types.Paragraph("The core physics is based on the One-Slope Log-Normal Path Loss Model, " +
				"the standard for indoor environment RF simulation."),
			types.Formula("RSSI = Ptx - L0 - 10 * n * log10(d) - Wall_Losses"),
			types.Bullet("RSSI: Received Signal Strength Indicator (dBm)"),
			types.Bullet("Ptx: Transmit Power (e.g., 20 dBm)"),
			types.Bullet("n: Path Loss Exponent (decay rate over distance)"),
			types.Bullet("d: Euclidean Distance (calculated using Pythagorean theorem)"),
			types.Bullet("Wall_Losses: Accumulated attenuation from obstacles (Ray Casting)"),
			types.Spacer(),
			types.Paragraph("Ray Casting is used to detect walls. A virtual line is drawn from the router to every specific " +
				"point on the grid. If this line intersects a wall, the signal strength is reduced by that wall's " +
				"attenuation factor (e.g., 12dB for concrete, 6dB for wood)."),
		},
	}
}

func demonstration() types.Section {
	return types.Section{
		Title: "Demonstration (Walkthrough)",
		Blocks: []types.Block{
			types.Paragraph("Follow these steps to demonstrate the application's capabilities:"),
			types.Step("Step 1: Design the Floor Plan",
				"Use the sidebar tools to draw the room layout. Select the 'Wall' tool and drag on the canvas. "+
					"You can adjust wall thickness using the configuration panel to simulate concrete vs. drywall."),
			types.Step("Step 2: Place the Router",
				"Select the 'Router' tool and click anywhere in the room. The system will instantly compute "+
					"and render the signal heatmap. Red areas indicate strong signal, while blue areas show dead zones."),
			types.Step("Step 3: Analyze Coverage",
				"Check the stats panel for 'Coverage %'. Move the router around to see real-time updates. "+
					"Notice how the signal drops significantly behind thick walls."),
			types.Step("Step 4: Auto-Optimization (AI)",
				"Click the 'Auto-Optimize' button. The system runs a grid-search heuristic, testing thousands of "+
					"positions to mathematically find the best location that maximizes coverage."),
		},
	}
}
