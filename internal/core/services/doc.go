// Package services implements the driving ports: the ingestion
// pipeline, the retriever and the answer assembler. Services
// orchestrate driven ports and hold no persistent state of their own;
// the vector store is the only state in the system.
package services
