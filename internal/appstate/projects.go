package appstate

import (
	"context"

	"github.com/angelmondragon/opusclip-demo/pkg/db/models"
	pkgerrors "github.com/angelmondragon/opusclip-demo/pkg/errors"
)

// Fallback messages when a failure carries no text of its own.
const (
	msgFetchFailed  = "Failed to fetch projects"
	msgCreateFailed = "Failed to create project"
	msgUpdateFailed = "Failed to update project"
	msgDeleteFailed = "Failed to delete project"
)

// FetchProjects replaces the cached list with the data layer's. A call made
// while a fetch is in flight returns immediately. Failures land in
// Projects.Error and are not returned.
func (s *Store) FetchProjects(ctx context.Context) {
	started := false
	s.update(ctx, func(st *State) {
		if st.Projects.Loading {
			return
		}
		started = true
		st.Projects.Loading = true
		st.Projects.Error = nil
	})
	if !started {
		s.logg.Debug(ctx, "appstate.fetch_projects_skipped")
		return
	}

	projects, err := s.data.ListProjects(ctx)
	if err != nil {
		s.logg.WarnErr(ctx, "appstate.fetch_projects_failed", err)
		s.update(ctx, func(st *State) {
			st.Projects.Loading = false
			st.Projects.Error = errorMessage(err, msgFetchFailed)
		})
		return
	}

	entities := make(map[string]models.Project, len(projects))
	ids := make([]string, 0, len(projects))
	for _, p := range projects {
		entities[p.ID] = p
		ids = append(ids, p.ID)
	}
	s.update(ctx, func(st *State) {
		st.Projects.Entities = entities
		st.Projects.IDs = ids
		st.Projects.Loading = false
	})
}

// RefreshProjects re-runs FetchProjects.
func (s *Store) RefreshProjects(ctx context.Context) {
	s.FetchProjects(ctx)
}

// CreateProject creates through the data layer and, once confirmed, puts the new
// project at the front of the list.
func (s *Store) CreateProject(ctx context.Context, input models.CreateProjectInput) (models.Project, error) {
	project, err := s.data.CreateProject(ctx, input)
	if err != nil {
		s.setError(ctx, err, msgCreateFailed)
		return models.Project{}, err
	}

	s.update(ctx, func(st *State) {
		if _, cached := st.Projects.Entities[project.ID]; !cached {
			st.Projects.IDs = append([]string{project.ID}, st.Projects.IDs...)
		}
		st.Projects.Entities[project.ID] = project
	})
	return project, nil
}

// UpdateProject updates through the data layer, then replaces the cached entity
// with the confirmed result. Projects not in the cache stay out of it.
func (s *Store) UpdateProject(ctx context.Context, id string, patch models.ProjectPatch) (models.Project, error) {
	project, err := s.data.UpdateProject(ctx, id, patch)
	if err != nil {
		s.setError(ctx, err, msgUpdateFailed)
		return models.Project{}, err
	}

	s.update(ctx, func(st *State) {
		if _, cached := st.Projects.Entities[id]; cached {
			st.Projects.Entities[id] = project
		}
	})
	return project, nil
}

// DeleteProject deletes through the data layer and drops the project from the
// cache only after the delete succeeded.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	if err := s.data.DeleteProject(ctx, id); err != nil {
		s.setError(ctx, err, msgDeleteFailed)
		return err
	}

	s.update(ctx, func(st *State) {
		delete(st.Projects.Entities, id)
		ids := st.Projects.IDs[:0]
		for _, existing := range st.Projects.IDs {
			if existing != id {
				ids = append(ids, existing)
			}
		}
		st.Projects.IDs = ids
	})
	return nil
}

func (s *Store) setError(ctx context.Context, err error, fallback string) {
	s.logg.WarnErr(ctx, "appstate.project_mutation_failed", err)
	s.update(ctx, func(st *State) {
		st.Projects.Error = errorMessage(err, fallback)
	})
}

// errorMessage prefers the human-readable message of a typed error over its
// coded Error() text.
func errorMessage(err error, fallback string) *string {
	msg := fallback
	if typed := pkgerrors.As(err); typed != nil && typed.Message() != "" {
		msg = typed.Message()
	} else if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return &msg
}
