// Package kittiio reads SemanticKITTI-layout sequence data from disk:
// calibration and pose text files, timestamp lists, velodyne point-cloud
// binaries and packed label binaries. It decodes raw bytes into the typed
// slices the scene package consumes and performs the fatal input checks
// (missing keys, short rows, point/label count mismatches).
package kittiio
