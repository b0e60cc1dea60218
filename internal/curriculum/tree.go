// Package curriculum models the grade → subject → topic → sub-topic tree and
// provides O(1) ancestry lookups from a sub-topic id.
package curriculum

import "context"

// SubTopic is a leaf of the curriculum tree. It owns a question pool.
type SubTopic struct {
	ID   string
	Name string
}

// Topic groups sub-topics within a subject.
type Topic struct {
	ID        string
	Name      string
	SubTopics []SubTopic
}

// Subject groups topics within a grade level.
type Subject struct {
	ID     string
	Name   string
	Topics []Topic
}

// GradeLevel is the root tier of the curriculum.
type GradeLevel struct {
	ID       string
	Name     string
	Subjects []Subject
}

// Tree is the full curriculum as fetched from the catalog.
type Tree struct {
	GradeLevels []GradeLevel
}

// Hierarchy is the resolved ancestry of a sub-topic, used to label sessions
// and questions for display.
type Hierarchy struct {
	GradeLevelID   string
	GradeLevelName string
	SubjectID      string
	SubjectName    string
	TopicID        string
	TopicName      string
	SubTopicID     string
	SubTopicName   string
}

// Provider fetches the curriculum tree from the catalog collaborator.
type Provider interface {
	FetchHierarchy(ctx context.Context) (*Tree, error)
}
