package cluster

import (
	"context"
	"fmt"
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/duration"
)

// PodStatus is the per-pod summary shown in the status output.
type PodStatus struct {
	Name     string `json:"name"`
	Ready    string `json:"ready"`
	Phase    string `json:"phase"`
	Restarts int32  `json:"restarts"`
	Age      string `json:"age"`
}

// ListPods returns a summary of all pods in the namespace.
func (c *Client) ListPods(ctx context.Context, namespace string) ([]PodStatus, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	list, err := c.clientset.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list pods in %s: %w", namespace, err)
	}

	statuses := make([]PodStatus, 0, len(list.Items))
	for _, pod := range list.Items {
		statuses = append(statuses, summarizePod(&pod))
	}
	return statuses, nil
}

func summarizePod(pod *corev1.Pod) PodStatus {
	ready := 0
	var restarts int32
	for _, cs := range pod.Status.ContainerStatuses {
		if cs.Ready {
			ready++
		}
		restarts += cs.RestartCount
	}

	phase := string(pod.Status.Phase)
	if pod.Status.Reason != "" {
		phase = pod.Status.Reason
	}
	if pod.DeletionTimestamp != nil {
		phase = "Terminating"
	}

	age := ""
	if !pod.CreationTimestamp.IsZero() {
		age = duration.HumanDuration(time.Since(pod.CreationTimestamp.Time))
	}

	return PodStatus{
		Name:     pod.Name,
		Ready:    fmt.Sprintf("%d/%d", ready, len(pod.Spec.Containers)),
		Phase:    phase,
		Restarts: restarts,
		Age:      age,
	}
}
