// Package archfile loads a device hierarchy and its annotation records
// from HCL files. It is the harness format the CLI and the integration
// tests feed on; the production architecture parser is a separate
// collaborator that builds the device.Hierarchy directly.
//
// A device file nests `block`, `mode` and `port` blocks to describe the
// hierarchy, and uses flat `annotate` blocks for physical-mode selections
// and operating↔physical pairings:
//
//	block "clb" {
//	  port "in" { width = 4 }
//	  mode "default" {
//	    block "ble" {
//	      mode "arith" { ... }
//	      mode "logic" { ... }
//	    }
//	  }
//	}
//
//	annotate {
//	  physical_path  = ["clb", "ble"]
//	  physical_modes = ["default"]
//	  physical_mode  = "logic"
//	}
package archfile
