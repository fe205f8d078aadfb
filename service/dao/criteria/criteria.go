// Package criteria implements the filter evaluation shared by the dao
// backends.
package criteria

import "github.com/viant/ticksim/service/dao"

// FilterByPolicy reports whether a record with the given policy name passes
// the supplied parameters. Only the "Policy" parameter is interpreted; an
// absent parameter matches everything.
func FilterByPolicy(policy string, parameters []*dao.Parameter) bool {
	for _, parameter := range parameters {
		if parameter == nil || parameter.Name != "Policy" {
			continue
		}
		switch value := parameter.Value.(type) {
		case string:
			if policy != value {
				return false
			}
		case []string:
			matched := false
			for _, candidate := range value {
				if policy == candidate {
					matched = true
					break
				}
			}
			if !matched {
				return false
			}
		}
	}
	return true
}
