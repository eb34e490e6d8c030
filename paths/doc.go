// This file is part of xrambus.
//
// xrambus is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// xrambus is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with xrambus.  If not, see <https://www.gnu.org/licenses/>.

// Package paths contains functions to prepare paths to xrambus resources.
//
// The ResourcePath() function returns the path to a resource, prepended with
// the appropriate config directory. For example, the following will return
// the path to the preferences file:
//
//	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
//
// The config directory depends on how the program was built. If the "release"
// build tag is present then the user's config directory is used, as reported
// by os.UserConfigDir(). Otherwise, the ".xrambus" directory in the current
// working directory is used. In both cases the directory is created if
// necessary.
package paths
