// Package domain contains the entities of the control validator: the audit
// control metadata submitted for review, the verdict categories the provider is
// asked to answer with, and the errors shared across layers. It is independent
// of any specific infrastructure or delivery mechanism.
package domain
