package inxi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProcesses(t *testing.T) {
	t.Run("test markers split the tables", func(t *testing.T) {
		procs := parseProcesses(decodeItems(t, `[
			{"001#1#0#CPU top": "5 of 312"},
			{"002#1#1#cpu": "12.1%", "003#1#1#command": "firefox", "004#1#1#pid": 2210, "005#1#1#mem": "8.5%"},
			{"006#2#1#cpu": "4.2%", "007#2#1#command": "Xorg", "008#2#1#pid": 1104, "009#2#1#mem": "1.1%"},
			{"010#3#0#Memory top": "5 of 312"},
			{"011#3#1#mem": "11.9%", "012#3#1#command": "java", "013#3#1#pid": 3301, "014#3#1#cpu": "2.0%"}
		]`))

		require.Len(t, procs.CPUTop, 2)
		assert.Equal(t, "firefox", procs.CPUTop[0].Command)
		assert.Equal(t, 2210, procs.CPUTop[0].PID)
		assert.Equal(t, "12.1%", procs.CPUTop[0].CPU)
		assert.Equal(t, "8.5%", procs.CPUTop[0].Mem)

		require.Len(t, procs.MemoryTop, 1)
		assert.Equal(t, "java", procs.MemoryTop[0].Command)
		assert.Equal(t, 3301, procs.MemoryTop[0].PID)
	})

	t.Run("test entries before a marker dropped", func(t *testing.T) {
		procs := parseProcesses(decodeItems(t, `[
			{"001#1#1#command": "stray", "002#1#1#pid": 1}
		]`))

		assert.Empty(t, procs.CPUTop)
		assert.Empty(t, procs.MemoryTop)
	})

	t.Run("test items without command skipped", func(t *testing.T) {
		procs := parseProcesses(decodeItems(t, `[
			{"001#1#0#CPU top": "5 of 312"},
			{"002#1#1#cpu": "1.0%"}
		]`))

		assert.Empty(t, procs.CPUTop)
	})
}

func TestParseRepos(t *testing.T) {
	t.Run("test package counts and mirror lists", func(t *testing.T) {
		repos := parseRepos(decodeValue(t, `[
			{"001#1#1#Packages": 1510, "002#1#2#pm": "pacman", "003#1#3#pkgs": 1495},
			{"004#2#1#pm": "flatpak", "005#2#2#pkgs": 15},
			{"006#3#0#Active pacman repo servers in": "/etc/pacman.d/mirrorlist"},
			["https://mirror.one/archlinux/$repo/os/$arch", "https://mirror.two/archlinux/$repo/os/$arch"]
		]`))

		assert.Equal(t, "1510", repos.Packages["total"])
		assert.Equal(t, "1495", repos.Packages["pacman"])
		assert.Equal(t, "15", repos.Packages["flatpak"])

		require.Len(t, repos.Repos, 2)
		assert.Equal(t, "/etc/pacman.d/mirrorlist", repos.Repos[0].Name)
		assert.Equal(t, "https://mirror.one/archlinux/$repo/os/$arch", repos.Repos[0].URL)
		assert.Equal(t, "/etc/pacman.d/mirrorlist", repos.Repos[1].Name)
	})

	t.Run("test repo name sticks across lists", func(t *testing.T) {
		repos := parseRepos(decodeValue(t, `[
			{"001#1#0#Active apt repos in": "/etc/apt/sources.list"},
			["deb http://deb.debian.org/debian bookworm main"],
			{"002#2#0#Active apt repos in": "/etc/apt/sources.list.d/docker.list"},
			["deb https://download.docker.com/linux/debian bookworm stable"]
		]`))

		require.Len(t, repos.Repos, 2)
		assert.Equal(t, "/etc/apt/sources.list", repos.Repos[0].Name)
		assert.Equal(t, "/etc/apt/sources.list.d/docker.list", repos.Repos[1].Name)
	})

	t.Run("test non list value yields empty shape", func(t *testing.T) {
		repos := parseRepos("nope")

		assert.NotNil(t, repos.Packages)
		assert.Empty(t, repos.Packages)
		assert.Empty(t, repos.Repos)
	})
}
