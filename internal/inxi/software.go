package inxi

import (
	"strings"

	"github.com/go-tangra/go-tangra-hwinfo/internal/model"
)

// parseProcesses reads the CPU top and Memory top tables. Marker items
// switch which table the command entries that follow land in; entries seen
// before any marker are dropped.
func parseProcesses(items []model.RawItem) *model.ProcessesInfo {
	out := model.NewProcessesInfo()

	section := ""
	for _, raw := range items {
		cleaned := cleanItem(raw)

		if _, ok := cleaned["CPU top"]; ok {
			section = "cpu"
			continue
		}
		if _, ok := cleaned["Memory top"]; ok {
			section = "memory"
			continue
		}
		if _, ok := cleaned["command"]; !ok {
			continue
		}

		entry := model.ProcessEntry{
			Command: asString(cleaned["command"]),
			PID:     asInt(cleaned["pid"], 0),
			CPU:     asString(cleaned["cpu"]),
			Mem:     asString(cleaned["mem"]),
		}
		switch section {
		case "cpu":
			out.CPUTop = append(out.CPUTop, entry)
		case "memory":
			out.MemoryTop = append(out.MemoryTop, entry)
		}
	}

	return out
}

// parseRepos reads package counts and repo server lists. The section mixes
// object items with plain lists: an object names the active repo, the list
// that follows carries its mirror URLs.
func parseRepos(value any) *model.ReposInfo {
	out := model.NewReposInfo()

	list, ok := value.([]any)
	if !ok {
		return out
	}

	repoName := ""
	for _, el := range list {
		switch item := el.(type) {
		case map[string]any:
			cleaned := cleanItem(item)

			if v, ok := cleaned["Packages"]; ok {
				out.Packages["total"] = asString(v)
			}
			if v, ok := cleaned["pm"]; ok {
				out.Packages[asString(v)] = asString(cleaned["pkgs"])
			}

			for _, rawKey := range sortedKeys(item) {
				if emptyValue(item[rawKey]) {
					continue
				}
				key := CleanKey(rawKey)
				if strings.Contains(strings.ToLower(key), "repo") || strings.Contains(key, "Active") {
					repoName = asString(item[rawKey])
				}
			}
		case []any:
			for _, u := range item {
				if s, ok := u.(string); ok && s != "" {
					out.Repos = append(out.Repos, model.RepoEntry{Name: repoName, URL: s})
				}
			}
		}
	}

	return out
}
