// Package writers opens the run's buffered output and log destinations and
// recognises the errors a closed downstream pipe produces.
package writers
