package services

import (
	"context"
	"fmt"
	"time"

	"github.com/projectboard/core/internal/domain/entities"
	"github.com/projectboard/core/internal/infrastructure/logger"
	"github.com/projectboard/core/internal/ports"
)

// OnboardingService seeds a freshly registered account with three sample
// boards so the first login never shows an empty screen. The whole seed runs
// in one transaction: a user ends up with all of the sample data or none.
type OnboardingService struct {
	transactor ports.Transactor
	logger     *logger.Logger
}

// NewOnboardingService creates a new onboarding service.
func NewOnboardingService(transactor ports.Transactor, logger *logger.Logger) *OnboardingService {
	return &OnboardingService{
		transactor: transactor,
		logger:     logger,
	}
}

type seedTask struct {
	title       string
	description string
	priority    entities.TaskPriority
	column      int
	position    int
	dueInDays   int   // 0 means no due date
	assignees   []int // indices into the seeded assignee list
	tags        []int // indices into the seeded tag list
}

type seedColumn struct {
	title string
	color string
}

type seedWorkspace struct {
	title       string
	description string
	color       string
	columns     []seedColumn
	tasks       []seedTask
}

type seedAssignee struct {
	name      string
	avatarURL string
}

type seedTag struct {
	name  string
	color string
}

var sampleAssignees = []seedAssignee{
	{"Maya Chen", "/avatars/maya.jpg"},
	{"Emma Larson", "/avatars/emma.jpg"},
	{"Lars Jensen", "/avatars/lars.jpg"},
	{"Sophie Visser", "/avatars/sophie.jpg"},
	{"Tim Novak", "/avatars/tim.jpg"},
	{"Lisa Meyer", "/avatars/lisa.jpg"},
}

var sampleTags = []seedTag{
	{"Frontend", "#3B82F6"},
	{"Backend", "#22C55E"},
	{"Database", "#A855F7"},
	{"Bug Fix", "#EF4444"},
	{"Feature", "#F97316"},
	{"Design", "#EC4899"},
	{"Testing", "#EAB308"},
	{"DevOps", "#6B7280"},
}

var sampleWorkspaces = []seedWorkspace{
	{
		title:       "E-commerce Platform",
		description: "Modern webshop built with React, Node.js and PostgreSQL",
		color:       "#3B82F6",
		columns: []seedColumn{
			{"To Do", "border-blue-400"},
			{"In Progress", "border-yellow-400"},
			{"Review", "border-purple-400"},
			{"Done", "border-green-400"},
		},
		tasks: []seedTask{
			{"Optimize search filters", "Implement faceted search with Elasticsearch for better product discovery", entities.PriorityMedium, 0, 0, 7, []int{3, 4}, []int{1, 2, 4}},
			{"Checkout flow A/B test", "Improve conversion rate by testing guest checkout versus required accounts", entities.PriorityHigh, 0, 1, 0, []int{2, 5}, []int{0, 5, 6}},
			{"Inventory management", "Real-time stock tracking with low-stock alerts for admins", entities.PriorityMedium, 0, 2, 9, []int{0}, []int{1, 2, 4}},
			{"Stripe webhook processing", "Handle payment confirmed/failed events and sync order status", entities.PriorityHigh, 1, 0, 7, []int{2}, []int{1, 4}},
			{"Product review moderation", "Automated spam detection and admin approval workflow for reviews", entities.PriorityLow, 1, 1, 0, []int{3}, []int{1, 0, 4}},
			{"Performance audit results", "Improve Lighthouse score: lazy loading, image optimization, code splitting", entities.PriorityHigh, 2, 0, 7, []int{4}, []int{0, 6, 7}},
			{"GDPR compliance check", "Cookie consent, data retention policies and user data export", entities.PriorityMedium, 2, 1, 0, []int{0}, []int{1, 6}},
			{"Abandoned cart recovery", "Email automation for unfinished orders with discount codes", entities.PriorityMedium, 3, 0, 7, []int{2, 1}, []int{1, 0, 4}},
			{"Social login integration", "Google and Facebook OAuth for faster account creation", entities.PriorityLow, 3, 1, 0, []int{3}, []int{1, 4}},
			{"Admin dashboard analytics", "Sales metrics, top products and customer insights for the business team", entities.PriorityHigh, 3, 2, 9, []int{0, 5}, []int{0, 1, 5}},
		},
	},
	{
		title:       "Task Management App",
		description: "Portfolio project with a kanban board and drag & drop",
		color:       "#22C55E",
		columns: []seedColumn{
			{"Backlog", "border-gray-400"},
			{"In Development", "border-blue-400"},
			{"Testing", "border-orange-400"},
			{"Completed", "border-green-400"},
		},
		tasks: []seedTask{
			{"Bulk operations UI", "Move, assign or delete multiple tasks at once", entities.PriorityLow, 0, 0, 5, []int{1}, []int{0, 4}},
			{"Workspace templates", "Pre-configured project templates (Scrum, Kanban, Bug Tracking)", entities.PriorityLow, 0, 1, 0, []int{3, 5}, []int{0, 5, 4}},
			{"Real-time collaboration cursor", "WebSocket implementation showing live user cursors while editing", entities.PriorityMedium, 1, 0, 5, []int{2, 1}, []int{1, 0, 4}},
			{"Advanced filtering system", "Complex queries: assigned to me + high priority + due this week", entities.PriorityHigh, 1, 1, 0, []int{0, 3}, []int{0, 1, 4}},
			{"Keyboard shortcuts", "Power user features: quick navigation and task creation via hotkeys", entities.PriorityLow, 1, 2, 7, []int{1}, []int{0, 4}},
			{"Drag & drop edge cases", "Cross-browser testing and touch device compatibility for mobile users", entities.PriorityHigh, 2, 0, 5, []int{4, 1}, []int{0, 6, 3}},
			{"Load testing scenarios", "Performance under 1000+ concurrent users with realistic data volumes", entities.PriorityMedium, 2, 1, 0, []int{4, 2}, []int{1, 6, 7}},
			{"Workspace invitation flow", "Email invites with role-based permissions (Admin, Member, Viewer)", entities.PriorityHigh, 3, 0, 5, []int{2, 3}, []int{1, 0, 4}},
			{"Comment threads", "Task discussions with mentions, notifications and email digest", entities.PriorityMedium, 3, 1, 0, []int{0, 1}, []int{1, 0, 4}},
			{"Activity feed dashboard", "Timeline of all workspace changes for project transparency", entities.PriorityMedium, 3, 2, 7, []int{3, 5}, []int{0, 1, 5}},
		},
	},
	{
		title:       "Personal Finance Tracker",
		description: "Side project for personal budget and expense management",
		color:       "#A855F7",
		columns: []seedColumn{
			{"Planning", "border-indigo-400"},
			{"Building", "border-yellow-400"},
			{"Testing", "border-red-400"},
			{"Deployed", "border-green-400"},
		},
		tasks: []seedTask{
			{"Expense categorization system", "Automatic transaction categorization based on merchant names and keywords", entities.PriorityMedium, 0, 0, 10, []int{2, 3}, []int{1, 2, 4}},
			{"Monthly budget alerts", "Email notifications when spending reaches 80% of a category budget", entities.PriorityHigh, 0, 1, 0, []int{0, 2}, []int{1, 4}},
			{"Bank CSV import", "Upload and parse bank statements in multiple export formats", entities.PriorityHigh, 1, 0, 10, []int{2, 0}, []int{1, 4}},
			{"Spending dashboard charts", "Interactive donut and line charts for monthly spending with Chart.js", entities.PriorityMedium, 1, 1, 0, []int{1, 5}, []int{0, 5, 4}},
			{"Recurring transactions tracker", "Automatic detection of fixed costs (Netflix, Spotify, rent) for budgeting", entities.PriorityLow, 1, 2, 12, []int{3}, []int{1, 2, 4}},
			{"CSV data validation", "Error handling for corrupt files and unknown transaction formats", entities.PriorityHigh, 2, 0, 10, []int{4}, []int{1, 6}},
			{"Cross-browser compatibility", "Responsive design testing and Safari/Firefox/Chrome compatibility checks", entities.PriorityMedium, 2, 1, 0, []int{4, 1}, []int{0, 6}},
			{"Transaction CRUD operations", "Manually add, edit and delete transactions with form validation", entities.PriorityHigh, 3, 0, 10, []int{0, 3}, []int{0, 1, 4}},
			{"Export to Excel", "Filtered transaction data export for tax filing and accountants", entities.PriorityMedium, 3, 1, 0, []int{2, 4}, []int{1, 4}},
			{"Savings goals tracker", "Visual progress tracking for savings goals with percentage and time indicators", entities.PriorityMedium, 3, 2, 12, []int{1, 5}, []int{0, 5, 4}},
		},
	},
}

// CreateInitialData seeds the user's account with the sample assignees, tags
// and boards.
func (s *OnboardingService) CreateInitialData(ctx context.Context, userID string) error {
	s.logger.Infow("Starting onboarding seed", "user_id", userID)

	var totalTasks, totalAssignments, totalTagRelations int

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context, repos ports.Repositories) error {
		assignees := make([]*entities.Assignee, 0, len(sampleAssignees))
		for _, sa := range sampleAssignees {
			avatar := sa.avatarURL
			assignee, err := entities.NewAssignee(sa.name, &avatar, userID)
			if err != nil {
				return err
			}
			if err := repos.Assignees.Create(ctx, assignee); err != nil {
				return fmt.Errorf("seed assignee %q: %w", sa.name, err)
			}
			assignees = append(assignees, assignee)
		}

		tags := make([]*entities.Tag, 0, len(sampleTags))
		for _, st := range sampleTags {
			tag, err := entities.NewTag(st.name, st.color, userID)
			if err != nil {
				return err
			}
			if err := repos.Tags.Create(ctx, tag); err != nil {
				return fmt.Errorf("seed tag %q: %w", st.name, err)
			}
			tags = append(tags, tag)
		}

		for wsPosition, sw := range sampleWorkspaces {
			description := sw.description
			color := sw.color
			workspace, err := entities.NewWorkspace(sw.title, &description, &color, userID, wsPosition)
			if err != nil {
				return err
			}
			if err := repos.Workspaces.Create(ctx, workspace); err != nil {
				return fmt.Errorf("seed workspace %q: %w", sw.title, err)
			}

			columns := make([]*entities.Column, 0, len(sw.columns))
			for colPosition, sc := range sw.columns {
				columnColor := sc.color
				column, err := entities.NewColumn(sc.title, &columnColor, workspace.ID, colPosition)
				if err != nil {
					return err
				}
				if err := repos.Columns.Create(ctx, column); err != nil {
					return fmt.Errorf("seed column %q: %w", sc.title, err)
				}
				columns = append(columns, column)
			}

			for _, st := range sw.tasks {
				var description *string
				if st.description != "" {
					d := st.description
					description = &d
				}
				var dueDate *time.Time
				if st.dueInDays > 0 {
					d := time.Now().UTC().AddDate(0, 0, st.dueInDays)
					dueDate = &d
				}

				task, err := entities.NewProjectTask(workspace.ID, columns[st.column].ID, st.title, st.priority, st.position, description, dueDate)
				if err != nil {
					return err
				}
				if err := repos.Tasks.Create(ctx, task); err != nil {
					return fmt.Errorf("seed task %q: %w", st.title, err)
				}
				totalTasks++

				for _, idx := range st.assignees {
					if err := repos.Tasks.AddAssignee(ctx, task.ID, assignees[idx].ID); err != nil {
						return fmt.Errorf("seed assignment for %q: %w", st.title, err)
					}
					totalAssignments++
				}
				for _, idx := range st.tags {
					if err := repos.Tasks.AddTag(ctx, task.ID, tags[idx].ID); err != nil {
						return fmt.Errorf("seed tag relation for %q: %w", st.title, err)
					}
					totalTagRelations++
				}
			}
		}

		return nil
	})
	if err != nil {
		s.logger.Errorw("Onboarding seed failed, rolled back", "user_id", userID, "error", err)
		return err
	}

	s.logger.Infow("Onboarding seed completed",
		"user_id", userID,
		"tasks", totalTasks,
		"assignments", totalAssignments,
		"tag_relations", totalTagRelations,
	)
	return nil
}
