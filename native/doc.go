// Package native locates an installed property engine on disk.
//
// Discovery order for the installation directory: the FLUIDPROP_PATH
// environment variable (a .env file next to the working directory or
// the executable is loaded first), then the path from an optional
// fluidprop.yaml config file, then a fixed list of conventional
// directories for the current platform. Component names resolve to
// .FLD files under fluids/ or predefined .MIX files under mixtures/,
// accepting both lower- and upper-case directory spellings.
package native
