// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package common

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const FilePermissions = 0755

// Directory is where rps looks for tournament files by default.
var Directory = filepath.Join(xdg.ConfigHome, "rps")

// TournamentFile is the default tournament file.
var TournamentFile = filepath.Join(Directory, "tournament.yaml")

func TryMkdir(dir string) {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		_ = os.MkdirAll(dir, FilePermissions)
	}
}

// ResolveTournamentFile picks the tournament file to load: the explicit
// argument, then $RPS_TOURNAMENT, then the default file. An empty result
// means no file is available and an empty tournament should be used.
func ResolveTournamentFile(arg string) string {
	switch {
	case arg != "":
		return arg
	case os.Getenv("RPS_TOURNAMENT") != "":
		return os.Getenv("RPS_TOURNAMENT")
	}

	if _, err := os.Stat(TournamentFile); err == nil {
		return TournamentFile
	}

	return ""
}
