// Package ops provides Smith Normal Form reduction over IntMatrix, the
// default implementation of the homology engine's external SNF collaborator.
package ops
