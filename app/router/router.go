package router

import (
	"net/http"
	"strings"

	"mumbai-homes/app/controller"
)

type Controllers struct {
	Content *controller.ContentController
	Project *controller.ProjectController
	Media   *controller.MediaController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(controllers *Controllers) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Public content routes
	http.HandleFunc("/api/content", controllers.Content.GetContent)

	http.HandleFunc("/api/content/", func(w http.ResponseWriter, r *http.Request) {
		// Event stream first, then per-section reads
		if strings.HasSuffix(r.URL.Path, "/events") {
			controllers.Content.Events(w, r)
			return
		}
		controllers.Content.GetSection(w, r)
	})

	// Public project routes
	http.HandleFunc("/api/projects", controllers.Project.ListProjects)
	http.HandleFunc("/api/projects/", controllers.Project.GetProject)

	// Admin content routes - one PUT per section
	http.HandleFunc("/admin/content/", controllers.Content.UpdateSection)

	// Legacy singleton project record
	http.HandleFunc("/admin/project-details", controllers.Project.UpdateProjectDetails)

	// Admin project routes
	http.HandleFunc("/admin/projects", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			controllers.Project.AddProject(w, r)
		} else if r.Method == http.MethodGet {
			controllers.Project.ListProjects(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	http.HandleFunc("/admin/projects/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/admin/projects/")

		// Route to specific sub-resources first
		if strings.HasSuffix(path, "/brochure/render") {
			controllers.Media.RenderBrochure(w, r)
			return
		}
		if strings.HasSuffix(path, "/brochure") {
			controllers.Media.GetBrochure(w, r)
			return
		}
		if strings.HasSuffix(path, "/gallery/import") {
			controllers.Media.ImportGallery(w, r)
			return
		}

		// Bare /admin/projects/:id
		switch r.Method {
		case http.MethodGet:
			controllers.Project.GetProject(w, r)
		case http.MethodPut:
			controllers.Project.UpdateProject(w, r)
		case http.MethodDelete:
			controllers.Project.DeleteProject(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Admin media routes
	http.HandleFunc("/admin/media/optimize", controllers.Media.OptimizeImage)
}
