// resolver.go
//
// A scalable, high performance drop-in replacement for the realty-dash nodejs data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of realtydash.
// realtydash is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// realtydash is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with realtydash.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package store

import (
	"sort"

	"github.com/localnerve/realtydash/internal/models"
)

// Read-time user joins. Records whose referenced user id does not resolve are
// filtered out of the result set entirely, never null-filled: the browser
// client assumes a full user object is always present on every row it
// receives. The join is re-run on every call, no caching.

// AllTeamActivity returns every feed entry joined with its user, ordered by
// id. Entries referencing an unknown user are dropped.
func (s *Store) AllTeamActivity() []models.TeamActivityWithUser {
	s.mu.RLock()
	defer s.mu.RUnlock()

	activities := make([]models.TeamActivityWithUser, 0, len(s.teamActivity))
	for _, activity := range s.teamActivity {
		user, ok := s.users[activity.UserID]
		if !ok {
			continue
		}
		activities = append(activities, models.TeamActivityWithUser{
			TeamActivity: activity,
			User:         user,
		})
	}
	sort.Slice(activities, func(i, j int) bool { return activities[i].ID < activities[j].ID })

	return activities
}

// AllDocuments returns every document joined with its sharing user, ordered
// by id. Documents referencing an unknown user are dropped.
func (s *Store) AllDocuments() []models.DocumentWithUser {
	s.mu.RLock()
	defer s.mu.RUnlock()

	documents := make([]models.DocumentWithUser, 0, len(s.documents))
	for _, document := range s.documents {
		user, ok := s.users[document.SharedBy]
		if !ok {
			continue
		}
		documents = append(documents, models.DocumentWithUser{
			Document:     document,
			SharedByUser: user,
		})
	}
	sort.Slice(documents, func(i, j int) bool { return documents[i].ID < documents[j].ID })

	return documents
}

// AllComments returns every comment joined with its user, ordered by id.
// Comments referencing an unknown user are dropped.
func (s *Store) AllComments() []models.CommentWithUser {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comments := make([]models.CommentWithUser, 0, len(s.comments))
	for _, comment := range s.comments {
		user, ok := s.users[comment.UserID]
		if !ok {
			continue
		}
		comments = append(comments, models.CommentWithUser{
			Comment: comment,
			User:    user,
		})
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID < comments[j].ID })

	return comments
}
