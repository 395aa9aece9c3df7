// Package services implements the driving ports by composing the record
// client, the colour palette, the segmentation engine and the timeline
// projection.
package services
